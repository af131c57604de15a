package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"leadvault_backend/internal/sources/repository"
	"leadvault_backend/internal/sources/transport"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSourceNotFound   = errors.New("lead source not found")
	ErrDuplicateName    = errors.New("a lead source with this name already exists")
)

// SourceRepository is the persistence surface the service depends on.
type SourceRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]repository.Source, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]repository.Source, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (repository.Source, error)
	Create(ctx context.Context, params repository.CreateSourceParams) (repository.Source, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, params repository.UpdateSourceParams) (repository.Source, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

var titleCaser = cases.Title(language.English)

type Service struct {
	repo SourceRepository
}

func New(repo SourceRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) (transport.SourceListResponse, error) {
	if userID == uuid.Nil {
		return transport.SourceListResponse{}, ErrNotAuthenticated
	}
	sources, err := s.repo.List(ctx, userID)
	if err != nil {
		return transport.SourceListResponse{}, err
	}
	return transport.ToSourceListResponse(sources), nil
}

func (s *Service) ListActive(ctx context.Context, userID uuid.UUID) (transport.SourceListResponse, error) {
	if userID == uuid.Nil {
		return transport.SourceListResponse{}, ErrNotAuthenticated
	}
	sources, err := s.repo.ListActive(ctx, userID)
	if err != nil {
		return transport.SourceListResponse{}, err
	}
	return transport.ToSourceListResponse(sources), nil
}

// Resolve returns the display configuration for a source identifier. Names
// match registered sources case-insensitively; unknown identifiers degrade
// to a title-cased label with the default icon and color, so leads imported
// with arbitrary source strings still render.
func (s *Service) Resolve(ctx context.Context, userID uuid.UUID, name string) (transport.SourceDisplay, error) {
	if userID == uuid.Nil {
		return transport.SourceDisplay{}, ErrNotAuthenticated
	}

	src, err := s.repo.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.SourceDisplay{
				Name:  titleCaser.String(name),
				Icon:  DefaultIcon,
				Color: DefaultColor,
			}, nil
		}
		return transport.SourceDisplay{}, err
	}

	return transport.SourceDisplay{
		Name:  src.Name,
		Icon:  NormalizeIcon(src.Icon),
		Color: src.Color,
	}, nil
}

// EnsureRegistered records a source name the first time a lead arrives with
// it, so the registry reflects every identifier actually in use. Existing
// registrations, including a concurrent one, are left untouched.
func (s *Service) EnsureRegistered(ctx context.Context, userID uuid.UUID, name string) error {
	if userID == uuid.Nil || name == "" {
		return nil
	}

	_, err := s.repo.GetByName(ctx, userID, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	_, err = s.repo.Create(ctx, repository.CreateSourceParams{
		UserID:   userID,
		Name:     titleCaser.String(name),
		Icon:     DefaultIcon,
		Color:    DefaultColor,
		IsActive: true,
	})
	if errors.Is(err, repository.ErrDuplicateName) {
		return nil
	}
	return err
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req transport.CreateSourceRequest) (transport.SourceResponse, error) {
	if userID == uuid.Nil {
		return transport.SourceResponse{}, ErrNotAuthenticated
	}

	params := repository.CreateSourceParams{
		UserID:   userID,
		Name:     req.Name,
		Icon:     NormalizeIcon(req.Icon),
		Color:    req.Color,
		IsActive: true,
	}
	if req.Color == "" {
		params.Color = DefaultColor
	}
	if req.IsActive != nil {
		params.IsActive = *req.IsActive
	}

	src, err := s.repo.Create(ctx, params)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return transport.SourceResponse{}, ErrDuplicateName
		}
		return transport.SourceResponse{}, err
	}
	return transport.ToSourceResponse(src), nil
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req transport.UpdateSourceRequest) (transport.SourceResponse, error) {
	if userID == uuid.Nil {
		return transport.SourceResponse{}, ErrNotAuthenticated
	}

	params := repository.UpdateSourceParams{
		Name:     req.Name,
		Color:    req.Color,
		IsActive: req.IsActive,
	}
	if req.Icon != nil {
		icon := NormalizeIcon(*req.Icon)
		params.Icon = &icon
	}

	src, err := s.repo.Update(ctx, id, userID, params)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return transport.SourceResponse{}, ErrSourceNotFound
		case errors.Is(err, repository.ErrDuplicateName):
			return transport.SourceResponse{}, ErrDuplicateName
		}
		return transport.SourceResponse{}, err
	}
	return transport.ToSourceResponse(src), nil
}

func (s *Service) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNotAuthenticated
	}

	err := s.repo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSourceNotFound
	}
	return err
}
