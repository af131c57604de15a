// Package conversations provides the per-lead conversation log module.
package conversations

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"leadvault_backend/internal/conversations/handler"
	"leadvault_backend/internal/conversations/repository"
	"leadvault_backend/internal/conversations/service"
	apphttp "leadvault_backend/internal/http"
	"leadvault_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	svc := service.New(repository.New(pool))
	return &Module{handler: handler.New(svc, val)}
}

func (m *Module) Name() string {
	return "conversations"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	leadsGroup := ctx.Protected.Group("/leads")
	conversationsGroup := ctx.Protected.Group("/conversations")
	m.handler.RegisterRoutes(leadsGroup, conversationsGroup)
}

var _ apphttp.Module = (*Module)(nil)
