package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/brightroof/solar-leads/internal/application"
	"github.com/brightroof/solar-leads/internal/domain/entity"
	"github.com/brightroof/solar-leads/internal/interface/middleware"
	"github.com/brightroof/solar-leads/internal/session"
	"github.com/brightroof/solar-leads/pkg/helpers"
	"github.com/brightroof/solar-leads/pkg/response"
	"github.com/brightroof/solar-leads/pkg/validation"
)

// AuthService is the slice of the application layer this handler consumes.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, error)
}

type AuthHandler struct {
	Svc        AuthService
	Sessions   session.Store
	Cookies    *helpers.Manager
	Logger     *logrus.Logger
	SessionTTL time.Duration
}

func NewAuthHandler(svc AuthService, sessions session.Store, cookies *helpers.Manager, logger *logrus.Logger, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{Svc: svc, Sessions: sessions, Cookies: cookies, Logger: logger, SessionTTL: sessionTTL}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "All fields are required", validation.ToDetails(err))
		return
	}

	_, err := h.Svc.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUserExists) {
			response.Fail(c, http.StatusConflict, "User already exists")
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Fail(c, http.StatusInternalServerError, "Error processing signup")
		return
	}
	response.OK(c, http.StatusOK, "User registered successfully!")
}

// Login POST /login — verifies credentials, then issues the session and
// hands the opaque token back in the cookie. No password material is echoed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "Username and password are required", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Fail(c, http.StatusUnauthorized, "User not found")
		case errors.Is(err, application.ErrIncorrectPassword):
			response.Fail(c, http.StatusUnauthorized, "Incorrect password")
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Fail(c, http.StatusInternalServerError, "Error processing login")
		}
		return
	}

	token, err := h.Sessions.Create(c.Request.Context(), session.Identity{UserID: u.ID, Email: u.Email})
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("session create failed")
		response.Fail(c, http.StatusInternalServerError, "Error processing login")
		return
	}
	h.Cookies.SetSession(c, token, h.SessionTTL)
	response.OK(c, http.StatusOK, "Login successful!")
}

// Logout POST /logout (session required)
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := h.Cookies.Token(c); token != "" {
		if err := h.Sessions.Delete(c.Request.Context(), token); err != nil {
			h.Logger.WithError(err).Warn("session delete failed")
		}
	}
	h.Cookies.Clear(c)
	response.OK(c, http.StatusOK, "Logged out.")
}

// Account GET /account — reports auth state; never errors.
func (h *AuthHandler) Account(c *gin.Context) {
	if ident := middleware.IdentityFromContext(c); ident != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "email": ident.Email})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": false, "email": nil})
}
