package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadvault_backend/internal/analytics/service"
	"leadvault_backend/platform/httpkit"
)

const msgNotAuthenticated = "Not authenticated"

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary", h.Summary)
}

func (h *Handler) Summary(c *gin.Context) {
	identity := httpkit.GetIdentity(c)
	userID := uuid.Nil
	if identity.IsAuthenticated() {
		userID = identity.UserID()
	}

	summary, err := h.svc.Summary(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			httpkit.Error(c, http.StatusUnauthorized, msgNotAuthenticated, nil)
			return
		}
		httpkit.Error(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	httpkit.OK(c, summary)
}
