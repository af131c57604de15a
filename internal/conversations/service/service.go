package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"leadvault_backend/internal/conversations/repository"
	"leadvault_backend/internal/conversations/transport"
)

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrLeadNotFound         = errors.New("lead not found")
	ErrConversationNotFound = errors.New("conversation not found")
)

// ConversationRepository is the persistence surface the service depends on.
type ConversationRepository interface {
	ListByLead(ctx context.Context, leadID uuid.UUID, userID uuid.UUID) ([]repository.Conversation, error)
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (repository.Conversation, error)
	Create(ctx context.Context, leadID uuid.UUID, userID uuid.UUID, date time.Time, content string) (repository.Conversation, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, date time.Time, content string) (repository.Conversation, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type Service struct {
	repo ConversationRepository
	now  func() time.Time
}

func New(repo ConversationRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListByLead(ctx context.Context, userID uuid.UUID, leadID uuid.UUID) (transport.ConversationListResponse, error) {
	if userID == uuid.Nil {
		return transport.ConversationListResponse{}, ErrNotAuthenticated
	}
	conversations, err := s.repo.ListByLead(ctx, leadID, userID)
	if err != nil {
		return transport.ConversationListResponse{}, err
	}
	return transport.ToConversationListResponse(conversations), nil
}

// Create records a conversation against an active lead owned by the tenant.
// The conversation date defaults to now when the caller omits it.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, leadID uuid.UUID, req transport.CreateConversationRequest) (transport.ConversationResponse, error) {
	if userID == uuid.Nil {
		return transport.ConversationResponse{}, ErrNotAuthenticated
	}

	date := s.now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}

	conv, err := s.repo.Create(ctx, leadID, userID, date, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return transport.ConversationResponse{}, ErrLeadNotFound
		}
		return transport.ConversationResponse{}, err
	}
	return transport.ToConversationResponse(conv), nil
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req transport.UpdateConversationRequest) (transport.ConversationResponse, error) {
	if userID == uuid.Nil {
		return transport.ConversationResponse{}, ErrNotAuthenticated
	}

	current, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.ConversationResponse{}, ErrConversationNotFound
		}
		return transport.ConversationResponse{}, err
	}

	date := current.Date
	if req.Date != nil {
		date = req.Date.UTC()
	}
	content := current.Content
	if req.Content != nil {
		content = *req.Content
	}

	conv, err := s.repo.Update(ctx, id, userID, date, content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.ConversationResponse{}, ErrConversationNotFound
		}
		return transport.ConversationResponse{}, err
	}
	return transport.ToConversationResponse(conv), nil
}

func (s *Service) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNotAuthenticated
	}

	err := s.repo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrConversationNotFound
	}
	return err
}
