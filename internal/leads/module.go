// Package leads provides the lead management bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"leadvault_backend/internal/events"
	apphttp "leadvault_backend/internal/http"
	"leadvault_backend/internal/leads/followup"
	"leadvault_backend/internal/leads/handler"
	"leadvault_backend/internal/leads/repository"
	"leadvault_backend/internal/leads/service"
	"leadvault_backend/platform/config"
	"leadvault_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
// The scheduler may be nil when reminder delivery is disabled.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, cfg config.FollowupConfig, scheduler service.ReminderScheduler) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, followup.NewPolicy(cfg), eventBus, scheduler)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// All leads routes require authentication
	leadsGroup := ctx.Protected.Group("/leads")
	m.handler.RegisterRoutes(leadsGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
