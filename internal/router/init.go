package router

import (
	"github.com/brightroof/solar-leads/internal/application"
	"github.com/brightroof/solar-leads/internal/container"
	pginfra "github.com/brightroof/solar-leads/internal/infrastructure/postgres"
	handlers "github.com/brightroof/solar-leads/internal/interface/http"
	"github.com/brightroof/solar-leads/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	contacts := pginfra.NewContactRepository(pool)
	services := pginfra.NewServiceRequestRepository(pool)
	calculators := pginfra.NewCalculatorRepository(pool)
	audit := pginfra.NewFormSubmissionRepository(pool)
	notifications := pginfra.NewNotificationRepository(pool)

	authSvc := application.NewAuthService(users, logger)
	intakeSvc := application.NewIntakeService(contacts, services, calculators, audit, logger)
	intakeSvc.Pub = container.GetRabbitPub()
	intakeSvc.ES = container.GetES()
	intakeSvc.ESServicesIndex = cfg.ESServicesIndex

	listingSvc := application.NewListingService(contacts, services, calculators, notifications)
	listingSvc.ES = container.GetES()
	listingSvc.ESServicesIndex = cfg.ESServicesIndex

	sessions := container.GetSessions()
	cookies := container.GetCookies()

	authH := handlers.NewAuthHandler(authSvc, sessions, cookies, logger, cfg.SessionTTL)
	intakeH := handlers.NewIntakeHandler(intakeSvc, logger)
	listingH := handlers.NewListingHandler(listingSvc, logger)

	r.Add(modules.NewAuthModule(authH, sessions, cookies))
	r.Add(modules.NewIntakeModule(intakeH, sessions, cookies, cfg.ProtectServiceForm, cfg.ProtectCalculatorForm))
	r.Add(modules.NewListingModule(listingH))
}
