package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/brightroof/solar-leads/internal/interface/http"
	"github.com/brightroof/solar-leads/internal/interface/middleware"
	"github.com/brightroof/solar-leads/internal/session"
	"github.com/brightroof/solar-leads/pkg/helpers"
)

// AuthModule wires signup/login/logout and the account probe.
// Public: POST /signup, POST /login, GET /account (session optional)
// Protected: POST /logout
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Sessions session.Store
	Cookies  *helpers.Manager
}

func NewAuthModule(h *handlers.AuthHandler, sessions session.Store, cookies *helpers.Manager) *AuthModule {
	return &AuthModule{Handler: h, Sessions: sessions, Cookies: cookies}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", m.Handler.Signup)
	rg.POST("/login", m.Handler.Login)
	rg.GET("/account", middleware.OptionalSession(m.Sessions, m.Cookies), m.Handler.Account)

	auth := rg.Group("/")
	auth.Use(middleware.RequireSession(m.Sessions, m.Cookies))
	{
		auth.POST("/logout", m.Handler.Logout)
	}
}
