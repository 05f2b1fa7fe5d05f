// Package leads provides the lead intake bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"alma_leads_backend/internal/adapters/storage"
	"alma_leads_backend/internal/events"
	apphttp "alma_leads_backend/internal/http"
	"alma_leads_backend/internal/leads/handler"
	"alma_leads_backend/internal/leads/repository"
	"alma_leads_backend/internal/leads/service"
	"alma_leads_backend/platform/logger"
	"alma_leads_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	publicHandler *handler.PublicHandler
	handler       *handler.Handler
	service       *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, backend storage.Backend, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, backend, bus, log)

	return &Module{
		publicHandler: handler.NewPublicHandler(svc, val),
		handler:       handler.New(svc, val),
		service:       svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead lifecycle service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
// Submission is public (rate limited); management requires authentication.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	publicGroup := ctx.V1.Group("/leads")
	publicGroup.Use(ctx.PublicRateLimiter.RateLimit())
	m.publicHandler.RegisterRoutes(publicGroup)

	m.handler.RegisterRoutes(ctx.Protected.Group("/leads"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
