package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/brightroof/solar-leads/internal/application"
	"github.com/brightroof/solar-leads/internal/domain/entity"
	"github.com/brightroof/solar-leads/internal/interface/middleware"
	"github.com/brightroof/solar-leads/internal/session"
	"github.com/brightroof/solar-leads/pkg/response"
	"github.com/brightroof/solar-leads/pkg/validation"
)

// IntakeService is the slice of the intake pipeline this handler consumes.
type IntakeService interface {
	SubmitContact(ctx context.Context, ident *session.Identity, c *entity.ContactForm, raw json.RawMessage) error
	SubmitService(ctx context.Context, ident *session.Identity, s *entity.ServiceRequest, raw json.RawMessage) error
	SubmitCalculator(ctx context.Context, ident *session.Identity, c *entity.CalculatorRequest, raw json.RawMessage) error
	SubmitGeneric(ctx context.Context, ident *session.Identity, formType string, formData json.RawMessage) error
}

type IntakeHandler struct {
	Svc    IntakeService
	Logger *logrus.Logger
}

func NewIntakeHandler(svc IntakeService, logger *logrus.Logger) *IntakeHandler {
	return &IntakeHandler{Svc: svc, Logger: logger}
}

const missingFieldsMsg = "Please fill in all required fields."

// badRequest reports a binding failure. Left-out fields keep the form
// message; a malformed body gets the generic one. Either way the per-field
// details ride along.
func badRequest(c *gin.Context, err error) {
	msg := "Invalid request payload."
	if validation.IsMissingFields(err) {
		msg = missingFieldsMsg
	}
	response.FailDetails(c, http.StatusBadRequest, msg, validation.ToDetails(err))
}

type contactRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

type serviceRequest struct {
	FullName           string `json:"fullName" binding:"required"`
	Email              string `json:"email" binding:"required"`
	Phone              string `json:"phone" binding:"required"`
	ServiceType        string `json:"serviceType" binding:"required"`
	ServiceDetails     string `json:"serviceDetails" binding:"required"`
	StreetAddress      string `json:"streetAddress" binding:"required"`
	StreetAddressLine2 string `json:"streetAddressLine2"`
	City               string `json:"city" binding:"required"`
	Region             string `json:"region" binding:"required"`
	PostalCode         string `json:"postalCode" binding:"required"`
}

type calculatorRequest struct {
	PanelCapacity    string `json:"panelCapacity" binding:"required"`
	RoofArea         string `json:"roofArea" binding:"required"`
	Budget           string `json:"budget" binding:"required"`
	State            string `json:"state" binding:"required"`
	CustomerCategory string `json:"customerCategory" binding:"required"`
	ElectricityCost  string `json:"electricityCost" binding:"required"`
}

type genericRequest struct {
	FormType string          `json:"formType" binding:"required"`
	FormData json.RawMessage `json:"formData"`
}

// SubmitContact POST /submit-contact (session required)
func (h *IntakeHandler) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	raw, _ := json.Marshal(req)
	contact := &entity.ContactForm{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
	}
	err := h.Svc.SubmitContact(c.Request.Context(), middleware.IdentityFromContext(c), contact, raw)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateSubmission) {
			response.Fail(c, http.StatusConflict, "A contact request with this email or phone already exists.")
			return
		}
		h.Logger.WithError(err).Error("contact submission failed")
		response.Fail(c, http.StatusInternalServerError, "Error submitting contact form")
		return
	}
	response.OK(c, http.StatusOK, "Contact form submission successful!")
}

// SubmitService POST /submit-form
func (h *IntakeHandler) SubmitService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	raw, _ := json.Marshal(req)
	sr := &entity.ServiceRequest{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		ServiceType:        req.ServiceType,
		ServiceDetails:     req.ServiceDetails,
		StreetAddress:      req.StreetAddress,
		StreetAddressLine2: req.StreetAddressLine2,
		City:               req.City,
		Region:             req.Region,
		PostalCode:         req.PostalCode,
	}
	err := h.Svc.SubmitService(c.Request.Context(), middleware.IdentityFromContext(c), sr, raw)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateSubmission) {
			response.Fail(c, http.StatusConflict, "A service request with this email or phone already exists.")
			return
		}
		h.Logger.WithError(err).Error("service submission failed")
		response.Fail(c, http.StatusInternalServerError, "Error submitting service request")
		return
	}
	response.OK(c, http.StatusOK, "Form submission successful!")
}

// SubmitCalculator POST /submit-calculator
func (h *IntakeHandler) SubmitCalculator(c *gin.Context) {
	var req calculatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	raw, _ := json.Marshal(req)
	calc := &entity.CalculatorRequest{
		PanelCapacity:    req.PanelCapacity,
		RoofArea:         req.RoofArea,
		Budget:           req.Budget,
		State:            req.State,
		CustomerCategory: req.CustomerCategory,
		ElectricityCost:  req.ElectricityCost,
	}
	err := h.Svc.SubmitCalculator(c.Request.Context(), middleware.IdentityFromContext(c), calc, raw)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateSubmission) {
			response.Fail(c, http.StatusConflict, "A calculator request with these details already exists.")
			return
		}
		h.Logger.WithError(err).Error("calculator submission failed")
		response.Fail(c, http.StatusInternalServerError, "Error submitting calculator data")
		return
	}
	response.OK(c, http.StatusOK, "Calculator data submission successful!")
}

// SubmitGeneric POST /submit — audit-log-only submissions.
// Keeps the legacy plain-text contract: 403 "Unauthorized" without a
// session, 200 text ack on success.
func (h *IntakeHandler) SubmitGeneric(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)
	if ident == nil {
		c.String(http.StatusForbidden, "Unauthorized")
		return
	}

	var req genericRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid submission payload.")
		return
	}

	if err := h.Svc.SubmitGeneric(c.Request.Context(), ident, req.FormType, req.FormData); err != nil {
		h.Logger.WithError(err).Error("generic submission failed")
		c.String(http.StatusInternalServerError, "Error saving form submission.")
		return
	}
	c.String(http.StatusOK, "Form submitted successfully.")
}
