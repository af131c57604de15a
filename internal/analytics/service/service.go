package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"leadvault_backend/internal/analytics/repository"
	"leadvault_backend/internal/analytics/transport"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type SummaryRepository interface {
	Summary(ctx context.Context, userID uuid.UUID) (repository.Summary, error)
}

type Service struct {
	repo SummaryRepository
}

func New(repo SummaryRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (transport.SummaryResponse, error) {
	if userID == uuid.Nil {
		return transport.SummaryResponse{}, ErrNotAuthenticated
	}

	summary, err := s.repo.Summary(ctx, userID)
	if err != nil {
		return transport.SummaryResponse{}, err
	}
	return transport.ToSummaryResponse(summary), nil
}
