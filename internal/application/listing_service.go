package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/brightroof/solar-leads/internal/domain/entity"
	repo "github.com/brightroof/solar-leads/internal/domain/repository"
)

// ListingService serves the read-only retrieval surface: unfiltered
// projections plus the single-predicate by-date listing.
type ListingService struct {
	Contacts      repo.ContactRepository
	Services      repo.ServiceRequestRepository
	Calculators   repo.CalculatorRepository
	Notifications repo.NotificationRepository

	ES              *elasticsearch.Client
	ESServicesIndex string
}

func NewListingService(
	contacts repo.ContactRepository,
	services repo.ServiceRequestRepository,
	calculators repo.CalculatorRepository,
	notifications repo.NotificationRepository,
) *ListingService {
	return &ListingService{
		Contacts:      contacts,
		Services:      services,
		Calculators:   calculators,
		Notifications: notifications,
	}
}

func (s *ListingService) ListServices(ctx context.Context) ([]entity.ServiceRequest, error) {
	return s.Services.List(ctx)
}

func (s *ListingService) ListContacts(ctx context.Context) ([]entity.ContactForm, error) {
	return s.Contacts.List(ctx)
}

func (s *ListingService) ListCalculators(ctx context.Context) ([]entity.CalculatorRequest, error) {
	return s.Calculators.List(ctx)
}

func (s *ListingService) ListNotifications(ctx context.Context) ([]entity.Notification, error) {
	return s.Notifications.ListNewestFirst(ctx)
}

// ServiceDayRow is the projection returned by the by-date listing.
type ServiceDayRow struct {
	ID                 int64  `json:"id"`
	ServiceType        string `json:"serviceType"`
	FormattedTimestamp string `json:"formatted_timestamp"`
}

// ServicesByDate lists service requests created within the given local
// calendar day (inclusive start, exclusive next day), in insertion order.
// date must be YYYY-MM-DD.
func (s *ListingService) ServicesByDate(ctx context.Context, date string) ([]ServiceDayRow, error) {
	start, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 0, 1)

	items, err := s.Services.ListByCreatedRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	rows := make([]ServiceDayRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, ServiceDayRow{
			ID:                 it.ID,
			ServiceType:        it.ServiceType,
			FormattedTimestamp: it.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		})
	}
	return rows, nil
}

// SearchServices performs a simple multi_match search on the indexed
// service requests. Returns an empty list when search is not configured.
func (s *ListingService) SearchServices(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESServicesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "full_name", "service_type", "city", "region"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESServicesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
