package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/brightroof/solar-leads/internal/domain/entity"
	repo "github.com/brightroof/solar-leads/internal/domain/repository"
	"github.com/brightroof/solar-leads/internal/session"
	"github.com/brightroof/solar-leads/pkg/helpers"
	"github.com/brightroof/solar-leads/pkg/mailer"
)

// IntakeService is the shared write path for every submission type:
// persist the typed record (the insert itself carries the duplicate check),
// then mirror the raw payload into the audit log. The mirror and the
// email/search side effects are best effort and never fail the intake.
type IntakeService struct {
	Contacts    repo.ContactRepository
	Services    repo.ServiceRequestRepository
	Calculators repo.CalculatorRepository
	Audit       repo.FormSubmissionRepository
	Logger      *logrus.Logger

	// Optional side effects; nil disables each.
	Pub             *helpers.RabbitPublisher
	ES              *elasticsearch.Client
	ESServicesIndex string
}

func NewIntakeService(
	contacts repo.ContactRepository,
	services repo.ServiceRequestRepository,
	calculators repo.CalculatorRepository,
	audit repo.FormSubmissionRepository,
	logger *logrus.Logger,
) *IntakeService {
	return &IntakeService{
		Contacts:    contacts,
		Services:    services,
		Calculators: calculators,
		Audit:       audit,
		Logger:      logger,
	}
}

// SubmitContact persists a contact form. Contact intake is a protected
// route, so ident is always present here.
func (s *IntakeService) SubmitContact(ctx context.Context, ident *session.Identity, c *entity.ContactForm, raw json.RawMessage) error {
	if err := s.Contacts.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrDuplicateSubmission
		}
		return err
	}
	s.audit(ctx, ident, entity.FormTypeContact, raw, "")
	return nil
}

// SubmitService persists a service request. Anonymous unless the route is
// configured as protected; the audit row keeps the form email for lookup
// when no identity is attached.
func (s *IntakeService) SubmitService(ctx context.Context, ident *session.Identity, sr *entity.ServiceRequest, raw json.RawMessage) error {
	if err := s.Services.Create(ctx, sr); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrDuplicateSubmission
		}
		return err
	}
	s.audit(ctx, ident, entity.FormTypeService, raw, sr.Email)
	s.enqueueConfirmation(ctx, sr)
	s.indexService(ctx, sr)
	return nil
}

// SubmitCalculator persists calculator inputs, deduplicated on
// (panel capacity, roof area, state).
func (s *IntakeService) SubmitCalculator(ctx context.Context, ident *session.Identity, c *entity.CalculatorRequest, raw json.RawMessage) error {
	if err := s.Calculators.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrDuplicateSubmission
		}
		return err
	}
	s.audit(ctx, ident, entity.FormTypeCalculator, raw, "")
	return nil
}

// SubmitGeneric writes an audit-log entry only; generic submissions carry no
// typed record and no duplicate key. The caller enforces the session.
func (s *IntakeService) SubmitGeneric(ctx context.Context, ident *session.Identity, formType string, formData json.RawMessage) error {
	f := &entity.FormSubmission{FormType: formType, FormData: formData}
	if ident != nil {
		f.UserID = &ident.UserID
		f.UserEmail = &ident.Email
	}
	return s.Audit.Create(ctx, f)
}

// audit mirrors an accepted submission. Failure is logged, never escalated:
// the typed record is already committed and is the source of truth.
func (s *IntakeService) audit(ctx context.Context, ident *session.Identity, formType string, raw json.RawMessage, fallbackEmail string) {
	f := &entity.FormSubmission{FormType: formType, FormData: raw}
	switch {
	case ident != nil:
		f.UserID = &ident.UserID
		f.UserEmail = &ident.Email
	case fallbackEmail != "":
		f.UserEmail = &fallbackEmail
	}
	if err := s.Audit.Create(ctx, f); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("form_type", formType).Warn("audit log write failed")
	}
}

func (s *IntakeService) enqueueConfirmation(ctx context.Context, sr *entity.ServiceRequest) {
	if s.Pub == nil || sr.Email == "" {
		return
	}
	job := mailer.EmailJob{
		To:      sr.Email,
		Subject: "We received your service request",
		Text: "Hi " + sr.FullName + ",\n\n" +
			"Thanks for your " + sr.ServiceType + " request. Our team will be in touch shortly.\n",
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", sr.Email).Warn("confirmation email enqueue failed")
	}
}

func (s *IntakeService) indexService(ctx context.Context, sr *entity.ServiceRequest) {
	if s.ES == nil || s.ESServicesIndex == "" {
		return
	}
	doc := map[string]any{
		"full_name":    sr.FullName,
		"email":        sr.Email,
		"phone":        sr.Phone,
		"service_type": sr.ServiceType,
		"city":         sr.City,
		"region":       sr.Region,
		"created_at":   sr.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESServicesIndex, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", sr.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("id", sr.ID).Warn("es index response error")
	}
}
