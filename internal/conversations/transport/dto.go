package transport

import (
	"time"

	"github.com/google/uuid"

	"leadvault_backend/internal/conversations/repository"
)

type CreateConversationRequest struct {
	Date    *time.Time `json:"date,omitempty"`
	Content string     `json:"content" validate:"required,min=1,max=10000"`
}

type UpdateConversationRequest struct {
	Date    *time.Time `json:"date,omitempty"`
	Content *string    `json:"content,omitempty" validate:"omitempty,min=1,max=10000"`
}

type ConversationResponse struct {
	ID        uuid.UUID `json:"id"`
	LeadID    uuid.UUID `json:"lead_id"`
	Date      time.Time `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ConversationListResponse struct {
	Items []ConversationResponse `json:"items"`
}

func ToConversationResponse(conv repository.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        conv.ID,
		LeadID:    conv.LeadID,
		Date:      conv.Date,
		Content:   conv.Content,
		CreatedAt: conv.CreatedAt,
	}
}

func ToConversationListResponse(conversations []repository.Conversation) ConversationListResponse {
	items := make([]ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		items = append(items, ToConversationResponse(conv))
	}
	return ConversationListResponse{Items: items}
}
