package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/brightroof/solar-leads/internal/application"
	"github.com/brightroof/solar-leads/internal/domain/entity"
	"github.com/brightroof/solar-leads/pkg/response"
)

// ListingService is the slice of the retrieval surface this handler consumes.
type ListingService interface {
	ListServices(ctx context.Context) ([]entity.ServiceRequest, error)
	ListContacts(ctx context.Context) ([]entity.ContactForm, error)
	ListCalculators(ctx context.Context) ([]entity.CalculatorRequest, error)
	ListNotifications(ctx context.Context) ([]entity.Notification, error)
	ServicesByDate(ctx context.Context, date string) ([]application.ServiceDayRow, error)
	SearchServices(ctx context.Context, q string, size int) ([]map[string]any, error)
}

type ListingHandler struct {
	Svc    ListingService
	Logger *logrus.Logger
}

func NewListingHandler(svc ListingService, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{Svc: svc, Logger: logger}
}

// GetAllServices GET /get-all-services
func (h *ListingHandler) GetAllServices(c *gin.Context) {
	items, err := h.Svc.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list services failed")
		response.Fail(c, http.StatusInternalServerError, "Error retrieving service data")
		return
	}
	if items == nil {
		items = []entity.ServiceRequest{}
	}
	response.OKData(c, http.StatusOK, items)
}

// GetContactData GET /get-contact-data
func (h *ListingHandler) GetContactData(c *gin.Context) {
	items, err := h.Svc.ListContacts(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list contacts failed")
		response.Fail(c, http.StatusInternalServerError, "Error retrieving contact data")
		return
	}
	if items == nil {
		items = []entity.ContactForm{}
	}
	response.OKData(c, http.StatusOK, items)
}

// GetCalculatorData GET /get-calculator-data
func (h *ListingHandler) GetCalculatorData(c *gin.Context) {
	items, err := h.Svc.ListCalculators(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list calculator data failed")
		response.Fail(c, http.StatusInternalServerError, "Error retrieving calculator data")
		return
	}
	if items == nil {
		items = []entity.CalculatorRequest{}
	}
	response.OKData(c, http.StatusOK, items)
}

// Notifications GET /notifications — newest first.
func (h *ListingHandler) Notifications(c *gin.Context) {
	items, err := h.Svc.ListNotifications(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list notifications failed")
		response.Fail(c, http.StatusInternalServerError, "Error fetching notifications")
		return
	}
	if items == nil {
		items = []entity.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": items})
}

// FetchSolarData GET /fetch-solar-data?date=YYYY-MM-DD — bare JSON array
// of the day's service requests.
func (h *ListingHandler) FetchSolarData(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Fail(c, http.StatusBadRequest, "Date parameter is required.")
		return
	}

	rows, err := h.Svc.ServicesByDate(c.Request.Context(), date)
	if err != nil {
		var perr *time.ParseError
		if errors.As(err, &perr) {
			response.Fail(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.")
			return
		}
		h.Logger.WithError(err).Error("fetch solar data failed")
		response.Fail(c, http.StatusInternalServerError, "Error fetching solar data.")
		return
	}
	if rows == nil {
		rows = []application.ServiceDayRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// SearchServices GET /search-services?q=&size=
func (h *ListingHandler) SearchServices(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.Query("size"))
	items, err := h.Svc.SearchServices(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("service search failed")
		response.Fail(c, http.StatusInternalServerError, "Error searching service data")
		return
	}
	response.OKData(c, http.StatusOK, items)
}
