package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadvault_backend/internal/conversations/service"
	"leadvault_backend/internal/conversations/transport"
	"leadvault_backend/platform/httpkit"
	"leadvault_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgNotAuthenticated = "Not authenticated"
	msgLeadNotFound     = "Lead not found"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts conversation routes. Listing and creation hang off
// the owning lead; update and delete address the conversation directly.
func (h *Handler) RegisterRoutes(leads *gin.RouterGroup, conversations *gin.RouterGroup) {
	leads.GET("/:id/conversations", h.ListByLead)
	leads.POST("/:id/conversations", h.Create)
	conversations.PUT("/:id", h.Update)
	conversations.DELETE("/:id", h.Delete)
}

func (h *Handler) ListByLead(c *gin.Context) {
	leadID, ok := parseID(c)
	if !ok {
		return
	}

	conversations, err := h.svc.ListByLead(c.Request.Context(), currentUserID(c), leadID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, conversations)
}

func (h *Handler) Create(c *gin.Context) {
	leadID, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	conv, err := h.svc.Create(c.Request.Context(), currentUserID(c), leadID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.Created(c, conv)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	conv, err := h.svc.Update(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, conv)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.NoContent(c)
}

func currentUserID(c *gin.Context) uuid.UUID {
	identity := httpkit.GetIdentity(c)
	if !identity.IsAuthenticated() {
		return uuid.Nil
	}
	return identity.UserID()
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		httpkit.Error(c, http.StatusUnauthorized, msgNotAuthenticated, nil)
	case errors.Is(err, service.ErrLeadNotFound):
		httpkit.Error(c, http.StatusNotFound, msgLeadNotFound, nil)
	case errors.Is(err, service.ErrConversationNotFound):
		httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
	default:
		httpkit.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
