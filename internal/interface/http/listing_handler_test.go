package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightroof/solar-leads/internal/application"
	"github.com/brightroof/solar-leads/internal/domain/entity"
)

// mockListingService implements the ListingService interface consumed by the handler.
type mockListingService struct {
	ListServicesFunc      func(ctx context.Context) ([]entity.ServiceRequest, error)
	ListContactsFunc      func(ctx context.Context) ([]entity.ContactForm, error)
	ListCalculatorsFunc   func(ctx context.Context) ([]entity.CalculatorRequest, error)
	ListNotificationsFunc func(ctx context.Context) ([]entity.Notification, error)
	ServicesByDateFunc    func(ctx context.Context, date string) ([]application.ServiceDayRow, error)
	SearchServicesFunc    func(ctx context.Context, q string, size int) ([]map[string]any, error)
}

func (m *mockListingService) ListServices(ctx context.Context) ([]entity.ServiceRequest, error) {
	if m.ListServicesFunc != nil {
		return m.ListServicesFunc(ctx)
	}
	return nil, nil
}

func (m *mockListingService) ListContacts(ctx context.Context) ([]entity.ContactForm, error) {
	if m.ListContactsFunc != nil {
		return m.ListContactsFunc(ctx)
	}
	return nil, nil
}

func (m *mockListingService) ListCalculators(ctx context.Context) ([]entity.CalculatorRequest, error) {
	if m.ListCalculatorsFunc != nil {
		return m.ListCalculatorsFunc(ctx)
	}
	return nil, nil
}

func (m *mockListingService) ListNotifications(ctx context.Context) ([]entity.Notification, error) {
	if m.ListNotificationsFunc != nil {
		return m.ListNotificationsFunc(ctx)
	}
	return nil, nil
}

func (m *mockListingService) ServicesByDate(ctx context.Context, date string) ([]application.ServiceDayRow, error) {
	if m.ServicesByDateFunc != nil {
		return m.ServicesByDateFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockListingService) SearchServices(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if m.SearchServicesFunc != nil {
		return m.SearchServicesFunc(ctx, q, size)
	}
	return []map[string]any{}, nil
}

func newListingRig(svc ListingService) *gin.Engine {
	h := NewListingHandler(svc, testLogger())
	r := gin.New()
	r.GET("/get-all-services", h.GetAllServices)
	r.GET("/get-contact-data", h.GetContactData)
	r.GET("/get-calculator-data", h.GetCalculatorData)
	r.GET("/notifications", h.Notifications)
	r.GET("/fetch-solar-data", h.FetchSolarData)
	r.GET("/search-services", h.SearchServices)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListingHandler_GetAllServices(t *testing.T) {
	t.Run("returns rows in the data envelope", func(t *testing.T) {
		r := newListingRig(&mockListingService{
			ListServicesFunc: func(_ context.Context) ([]entity.ServiceRequest, error) {
				return []entity.ServiceRequest{{ID: 1, Email: "carol@example.com"}}, nil
			},
		})
		w := get(r, "/get-all-services")

		require.Equal(t, http.StatusOK, w.Code)
		var got struct {
			Success bool                    `json:"success"`
			Data    []entity.ServiceRequest `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.Success)
		require.Len(t, got.Data, 1)
		assert.Equal(t, "carol@example.com", got.Data[0].Email)
	})

	t.Run("empty store yields an empty array, not null", func(t *testing.T) {
		r := newListingRig(&mockListingService{})
		w := get(r, "/get-all-services")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("store failure", func(t *testing.T) {
		r := newListingRig(&mockListingService{
			ListServicesFunc: func(_ context.Context) ([]entity.ServiceRequest, error) {
				return nil, errors.New("boom")
			},
		})
		w := get(r, "/get-all-services")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error retrieving service data")
	})
}

func TestListingHandler_Notifications(t *testing.T) {
	r := newListingRig(&mockListingService{
		ListNotificationsFunc: func(_ context.Context) ([]entity.Notification, error) {
			return []entity.Notification{
				{ID: 2, Message: "newer"},
				{ID: 1, Message: "older"},
			}, nil
		},
	})
	w := get(r, "/notifications")

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Success       bool                  `json:"success"`
		Notifications []entity.Notification `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Success)
	require.Len(t, got.Notifications, 2)
	assert.Equal(t, "newer", got.Notifications[0].Message)
}

func TestListingHandler_FetchSolarData(t *testing.T) {
	t.Run("missing date parameter", func(t *testing.T) {
		r := newListingRig(&mockListingService{})
		w := get(r, "/fetch-solar-data")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Date parameter is required.")
	})

	t.Run("malformed date", func(t *testing.T) {
		r := newListingRig(&mockListingService{
			ServicesByDateFunc: func(_ context.Context, date string) ([]application.ServiceDayRow, error) {
				_, err := time.ParseInLocation("2006-01-02", date, time.Local)
				return nil, err
			},
		})
		w := get(r, "/fetch-solar-data?date=15-03-2025")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid date format. Use YYYY-MM-DD.")
	})

	t.Run("returns a bare array", func(t *testing.T) {
		r := newListingRig(&mockListingService{
			ServicesByDateFunc: func(_ context.Context, date string) ([]application.ServiceDayRow, error) {
				assert.Equal(t, "2025-03-15", date)
				return []application.ServiceDayRow{
					{ID: 7, ServiceType: "installation", FormattedTimestamp: "2025-03-15 09:30:12"},
				}, nil
			},
		})
		w := get(r, "/fetch-solar-data?date=2025-03-15")

		require.Equal(t, http.StatusOK, w.Code)
		var rows []application.ServiceDayRow
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, int64(7), rows[0].ID)
		assert.Equal(t, "installation", rows[0].ServiceType)
	})

	t.Run("empty day is an empty array", func(t *testing.T) {
		r := newListingRig(&mockListingService{})
		w := get(r, "/fetch-solar-data?date=2025-03-16")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestListingHandler_SearchServices(t *testing.T) {
	r := newListingRig(&mockListingService{
		SearchServicesFunc: func(_ context.Context, q string, size int) ([]map[string]any, error) {
			assert.Equal(t, "carol", q)
			assert.Equal(t, 5, size)
			return []map[string]any{{"email": "carol@example.com"}}, nil
		},
	})
	w := get(r, "/search-services?q=carol&size=5")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carol@example.com")
}
