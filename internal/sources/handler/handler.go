package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadvault_backend/internal/sources/service"
	"leadvault_backend/internal/sources/transport"
	"leadvault_backend/platform/httpkit"
	"leadvault_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgNotAuthenticated = "Not authenticated"
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
	rg.GET("/active", h.ListActive)
	rg.GET("/resolve/:name", h.Resolve)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	sources, err := h.svc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, sources)
}

func (h *Handler) ListActive(c *gin.Context) {
	sources, err := h.svc.ListActive(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, sources)
}

func (h *Handler) Resolve(c *gin.Context) {
	display, err := h.svc.Resolve(c.Request.Context(), currentUserID(c), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, display)
}

func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	src, err := h.svc.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.Created(c, src)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	src, err := h.svc.Update(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpkit.OK(c, src)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
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

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		httpkit.Error(c, http.StatusUnauthorized, msgNotAuthenticated, nil)
	case errors.Is(err, service.ErrSourceNotFound):
		httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrDuplicateName):
		httpkit.Error(c, http.StatusConflict, err.Error(), nil)
	default:
		httpkit.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
