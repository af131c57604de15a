package transport

import (
	"time"

	"github.com/google/uuid"

	"leadvault_backend/internal/leads/repository"
)

// Request DTOs
type CreateLeadRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=200"`
	Email            string   `json:"email" validate:"required,email"`
	Phone            string   `json:"phone" validate:"required,min=5,max=20"`
	Source           string   `json:"source" validate:"required,min=1,max=100"`
	Notes            *string  `json:"notes,omitempty" validate:"omitempty,max=5000"`
	PropertyInterest *string  `json:"property_interest,omitempty" validate:"omitempty,max=500"`
	Budget           *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Location         *string  `json:"location,omitempty" validate:"omitempty,max=200"`
}

type UpdateLeadRequest struct {
	Name             *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email            *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone            *string    `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Status           *string    `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified proposal negotiation closed"`
	Source           *string    `json:"source,omitempty" validate:"omitempty,min=1,max=100"`
	Notes            *string    `json:"notes,omitempty" validate:"omitempty,max=5000"`
	PropertyInterest *string    `json:"property_interest,omitempty" validate:"omitempty,max=500"`
	Budget           *float64   `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Location         *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	LastContact      *time.Time `json:"last_contact,omitempty"`
	NextFollowup     *time.Time `json:"next_followup,omitempty"`
	OptinStatus      *bool      `json:"optin_status,omitempty"`
}

// Response DTOs
type LeadResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Status           string     `json:"status"`
	Source           string     `json:"source"`
	Notes            *string    `json:"notes,omitempty"`
	PropertyInterest *string    `json:"property_interest,omitempty"`
	Budget           *float64   `json:"budget,omitempty"`
	Location         *string    `json:"location,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	LastContact      time.Time  `json:"last_contact"`
	NextFollowup     time.Time  `json:"next_followup"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
	OptinStatus      bool       `json:"optin_status"`
	OptinViewedAt    *time.Time `json:"optin_viewed_at,omitempty"`
}

type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
}

func ToLeadResponse(lead repository.Lead) LeadResponse {
	return LeadResponse{
		ID:               lead.ID,
		Name:             lead.Name,
		Email:            lead.Email,
		Phone:            lead.Phone,
		Status:           lead.Status,
		Source:           lead.Source,
		Notes:            lead.Notes,
		PropertyInterest: lead.PropertyInterest,
		Budget:           lead.Budget,
		Location:         lead.Location,
		CreatedAt:        lead.CreatedAt,
		LastContact:      lead.LastContact,
		NextFollowup:     lead.NextFollowup,
		DeletedAt:        lead.DeletedAt,
		OptinStatus:      lead.OptinStatus,
		OptinViewedAt:    lead.OptinViewedAt,
	}
}

func ToLeadListResponse(leads []repository.Lead) LeadListResponse {
	items := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		items = append(items, ToLeadResponse(lead))
	}
	return LeadListResponse{Items: items}
}
