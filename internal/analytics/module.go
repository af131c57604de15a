// Package analytics provides read-only dashboard aggregates over the
// tenant's active pipeline.
package analytics

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"leadvault_backend/internal/analytics/handler"
	"leadvault_backend/internal/analytics/repository"
	"leadvault_backend/internal/analytics/service"
	apphttp "leadvault_backend/internal/http"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(pool *pgxpool.Pool) *Module {
	return &Module{handler: handler.New(service.New(repository.New(pool)))}
}

func (m *Module) Name() string {
	return "analytics"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/analytics")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
