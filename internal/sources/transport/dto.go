package transport

import (
	"time"

	"github.com/google/uuid"

	"leadvault_backend/internal/sources/repository"
)

type CreateSourceRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Icon     string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Color    string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type UpdateSourceRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Icon     *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Color    *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type SourceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type SourceListResponse struct {
	Items []SourceResponse `json:"items"`
}

// SourceDisplay is the resolved presentation for a source identifier,
// whether or not the tenant registered it.
type SourceDisplay struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func ToSourceResponse(src repository.Source) SourceResponse {
	return SourceResponse{
		ID:        src.ID,
		Name:      src.Name,
		Icon:      src.Icon,
		Color:     src.Color,
		IsActive:  src.IsActive,
		CreatedAt: src.CreatedAt,
	}
}

func ToSourceListResponse(sources []repository.Source) SourceListResponse {
	items := make([]SourceResponse, 0, len(sources))
	for _, src := range sources {
		items = append(items, ToSourceResponse(src))
	}
	return SourceListResponse{Items: items}
}
