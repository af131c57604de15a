package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadvault_backend/internal/leads/service"
	"leadvault_backend/internal/leads/transport"
	"leadvault_backend/platform/httpkit"
	"leadvault_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"

	msgNotAuthenticated = "Not authenticated"
	msgLeadNotFound     = "Lead not found"
	msgAlreadyDeleted   = "Lead is already deleted"
	msgNotDeleted       = "Lead is not deleted"
	msgNotSoftDeleted   = "Lead must be soft-deleted first"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/deleted", h.ListDeleted)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/restore", h.Restore)
	rg.DELETE("/:id/permanent", h.PermanentDelete)
}

func (h *Handler) List(c *gin.Context) {
	leads, err := h.svc.GetAll(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, leads)
}

func (h *Handler) ListDeleted(c *gin.Context) {
	leads, err := h.svc.GetDeleted(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, leads)
}

func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.Created(c, lead)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	lead, err := h.svc.GetByID(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, lead)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Update(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, lead)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	lead, err := h.svc.SoftDelete(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, lead)
}

func (h *Handler) Restore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	lead, err := h.svc.Restore(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, lead)
}

func (h *Handler) PermanentDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.PermanentDelete(c.Request.Context(), currentUserID(c), id); err != nil {
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
	case errors.Is(err, service.ErrLeadAlreadyDeleted):
		httpkit.Error(c, http.StatusConflict, msgAlreadyDeleted, nil)
	case errors.Is(err, service.ErrLeadNotDeleted):
		httpkit.Error(c, http.StatusConflict, msgNotDeleted, nil)
	case errors.Is(err, service.ErrLeadNotSoftDeleted):
		httpkit.Error(c, http.StatusConflict, msgNotSoftDeleted, nil)
	case errors.Is(err, service.ErrUnknownStatus):
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
	default:
		httpkit.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
