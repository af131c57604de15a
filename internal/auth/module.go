// Package auth provides the authentication bounded context module.
package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"leadvault_backend/internal/auth/handler"
	"leadvault_backend/internal/auth/repository"
	"leadvault_backend/internal/auth/service"
	apphttp "leadvault_backend/internal/http"
	"leadvault_backend/platform/config"
	"leadvault_backend/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg)
	h := handler.New(svc, val, cfg.GetRefreshTokenTTL())

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the auth service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public auth routes with stricter rate limiting
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)

	// Protected user routes
	ctx.Protected.GET("/users/me", m.handler.GetMe)
	ctx.Protected.POST("/users/me/password", m.handler.ChangePassword)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
