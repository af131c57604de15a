// Package sources provides the lead source registry module.
package sources

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"leadvault_backend/internal/events"
	apphttp "leadvault_backend/internal/http"
	"leadvault_backend/internal/sources/handler"
	"leadvault_backend/internal/sources/repository"
	"leadvault_backend/internal/sources/service"
	"leadvault_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	svc := service.New(repository.New(pool))
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

func (m *Module) Name() string {
	return "sources"
}

// Service returns the source registry service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/sources")
	m.handler.RegisterRoutes(group)
}

// RegisterHandlers subscribes to lead events so new source identifiers are
// recorded in the registry as they appear.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.LeadCreated{}.EventName(), m)
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LeadCreated:
		return m.service.EnsureRegistered(ctx, e.TenantID, e.Source)
	default:
		return nil
	}
}

var _ apphttp.Module = (*Module)(nil)
var _ events.Handler = (*Module)(nil)
