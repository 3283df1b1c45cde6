package repository

import (
	"context"
	"time"

	"github.com/brightroof/solar-leads/internal/domain/entity"
)

// ContactRepository persists contact-form submissions.
// Create returns ErrDuplicate when the email or phone already exists.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.ContactForm) error
	List(ctx context.Context) ([]entity.ContactForm, error)
}

// ServiceRequestRepository persists service requests.
// Create returns ErrDuplicate when the email or phone already exists.
type ServiceRequestRepository interface {
	Create(ctx context.Context, s *entity.ServiceRequest) error
	List(ctx context.Context) ([]entity.ServiceRequest, error)

	// ListByCreatedRange returns rows with created_at in [from, to),
	// in insertion order.
	ListByCreatedRange(ctx context.Context, from, to time.Time) ([]entity.ServiceRequest, error)
}

// CalculatorRepository persists calculator submissions.
// Create returns ErrDuplicate when (panel capacity, roof area, state)
// all match an existing row.
type CalculatorRepository interface {
	Create(ctx context.Context, c *entity.CalculatorRequest) error
	List(ctx context.Context) ([]entity.CalculatorRequest, error)
}

// FormSubmissionRepository is the append-only audit mirror. No dedup.
type FormSubmissionRepository interface {
	Create(ctx context.Context, f *entity.FormSubmission) error
}

// NotificationRepository reads notifications produced elsewhere.
type NotificationRepository interface {
	// ListNewestFirst orders by creation time descending.
	ListNewestFirst(ctx context.Context) ([]entity.Notification, error)
}
