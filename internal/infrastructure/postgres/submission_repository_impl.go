package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brightroof/solar-leads/internal/domain/entity"
	"github.com/brightroof/solar-leads/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.ContactForm) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contact_forms (full_name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.FullName, c.Email, c.Phone, c.Message)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]entity.ContactForm, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, email, phone, message, created_at
		FROM contact_forms
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ContactForm, error) {
		var c entity.ContactForm
		err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Message, &c.CreatedAt)
		return c, err
	})
}

var _ repository.ContactRepository = (*ContactRepository)(nil)

type ServiceRequestRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRequestRepository(pool *pgxpool.Pool) *ServiceRequestRepository {
	return &ServiceRequestRepository{pool: pool}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, s *entity.ServiceRequest) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO service_requests
			(full_name, email, phone, service_type, service_details,
			 street_address, street_address_line2, city, region, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, s.FullName, s.Email, s.Phone, s.ServiceType, s.ServiceDetails,
		s.StreetAddress, s.StreetAddressLine2, s.City, s.Region, s.PostalCode)

	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func scanServiceRequest(row pgx.CollectableRow) (entity.ServiceRequest, error) {
	var s entity.ServiceRequest
	err := row.Scan(&s.ID, &s.FullName, &s.Email, &s.Phone, &s.ServiceType,
		&s.ServiceDetails, &s.StreetAddress, &s.StreetAddressLine2,
		&s.City, &s.Region, &s.PostalCode, &s.CreatedAt)
	return s, err
}

func (r *ServiceRequestRepository) List(ctx context.Context) ([]entity.ServiceRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, email, phone, service_type, service_details,
		       street_address, street_address_line2, city, region, postal_code, created_at
		FROM service_requests
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanServiceRequest)
}

func (r *ServiceRequestRepository) ListByCreatedRange(ctx context.Context, from, to time.Time) ([]entity.ServiceRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, email, phone, service_type, service_details,
		       street_address, street_address_line2, city, region, postal_code, created_at
		FROM service_requests
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY id
	`, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanServiceRequest)
}

var _ repository.ServiceRequestRepository = (*ServiceRequestRepository)(nil)

type CalculatorRepository struct {
	pool *pgxpool.Pool
}

func NewCalculatorRepository(pool *pgxpool.Pool) *CalculatorRepository {
	return &CalculatorRepository{pool: pool}
}

func (r *CalculatorRepository) Create(ctx context.Context, c *entity.CalculatorRequest) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO calculator_requests
			(panel_capacity, roof_area, budget, state, customer_category, electricity_cost)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, c.PanelCapacity, c.RoofArea, c.Budget, c.State, c.CustomerCategory, c.ElectricityCost)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *CalculatorRepository) List(ctx context.Context) ([]entity.CalculatorRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, panel_capacity, roof_area, budget, state, customer_category,
		       electricity_cost, created_at
		FROM calculator_requests
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.CalculatorRequest, error) {
		var c entity.CalculatorRequest
		err := row.Scan(&c.ID, &c.PanelCapacity, &c.RoofArea, &c.Budget,
			&c.State, &c.CustomerCategory, &c.ElectricityCost, &c.CreatedAt)
		return c, err
	})
}

var _ repository.CalculatorRepository = (*CalculatorRepository)(nil)

type FormSubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewFormSubmissionRepository(pool *pgxpool.Pool) *FormSubmissionRepository {
	return &FormSubmissionRepository{pool: pool}
}

func (r *FormSubmissionRepository) Create(ctx context.Context, f *entity.FormSubmission) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO form_submissions (user_id, user_email, form_type, form_data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, f.UserID, f.UserEmail, f.FormType, f.FormData)

	return row.Scan(&f.ID, &f.CreatedAt)
}

var _ repository.FormSubmissionRepository = (*FormSubmissionRepository)(nil)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) ListNewestFirst(ctx context.Context) ([]entity.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, message, created_at
		FROM notifications
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Notification, error) {
		var n entity.Notification
		err := row.Scan(&n.ID, &n.Message, &n.CreatedAt)
		return n, err
	})
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)
