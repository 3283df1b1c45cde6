package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/brightroof/solar-leads/internal/interface/http"
	"github.com/brightroof/solar-leads/internal/interface/middleware"
	"github.com/brightroof/solar-leads/internal/session"
	"github.com/brightroof/solar-leads/pkg/helpers"
)

// IntakeModule wires the submission endpoints. Contact intake always sits
// behind the session gate; service and calculator intake are anonymous by
// default but each can be flipped to protected via configuration. The
// generic /submit route resolves the session itself to keep its legacy
// plain-text 403.
type IntakeModule struct {
	Handler           *handlers.IntakeHandler
	Sessions          session.Store
	Cookies           *helpers.Manager
	ProtectService    bool
	ProtectCalculator bool
}

func NewIntakeModule(h *handlers.IntakeHandler, sessions session.Store, cookies *helpers.Manager, protectService, protectCalculator bool) *IntakeModule {
	return &IntakeModule{
		Handler:           h,
		Sessions:          sessions,
		Cookies:           cookies,
		ProtectService:    protectService,
		ProtectCalculator: protectCalculator,
	}
}

func (m *IntakeModule) Register(rg *gin.RouterGroup) {
	gate := middleware.RequireSession(m.Sessions, m.Cookies)
	optional := middleware.OptionalSession(m.Sessions, m.Cookies)

	rg.POST("/submit", optional, m.Handler.SubmitGeneric)
	rg.POST("/submit-contact", gate, m.Handler.SubmitContact)

	if m.ProtectService {
		rg.POST("/submit-form", gate, m.Handler.SubmitService)
	} else {
		rg.POST("/submit-form", optional, m.Handler.SubmitService)
	}

	if m.ProtectCalculator {
		rg.POST("/submit-calculator", gate, m.Handler.SubmitCalculator)
	} else {
		rg.POST("/submit-calculator", optional, m.Handler.SubmitCalculator)
	}
}
