package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"leadvault_backend/internal/sources/repository"
	"leadvault_backend/internal/sources/transport"
)

type memoryRepo struct {
	sources map[uuid.UUID]repository.Source
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{sources: make(map[uuid.UUID]repository.Source)}
}

func (m *memoryRepo) List(_ context.Context, userID uuid.UUID) ([]repository.Source, error) {
	var out []repository.Source
	for _, src := range m.sources {
		if src.UserID == userID {
			out = append(out, src)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListActive(_ context.Context, userID uuid.UUID) ([]repository.Source, error) {
	var out []repository.Source
	for _, src := range m.sources {
		if src.UserID == userID && src.IsActive {
			out = append(out, src)
		}
	}
	return out, nil
}

func (m *memoryRepo) GetByName(_ context.Context, userID uuid.UUID, name string) (repository.Source, error) {
	for _, src := range m.sources {
		if src.UserID == userID && strings.EqualFold(src.Name, name) {
			return src, nil
		}
	}
	return repository.Source{}, repository.ErrNotFound
}

func (m *memoryRepo) Create(_ context.Context, params repository.CreateSourceParams) (repository.Source, error) {
	for _, src := range m.sources {
		if src.UserID == params.UserID && strings.EqualFold(src.Name, params.Name) {
			return repository.Source{}, repository.ErrDuplicateName
		}
	}
	src := repository.Source{
		ID:        uuid.New(),
		UserID:    params.UserID,
		Name:      params.Name,
		Icon:      params.Icon,
		Color:     params.Color,
		IsActive:  params.IsActive,
		CreatedAt: time.Now().UTC(),
	}
	m.sources[src.ID] = src
	return src, nil
}

func (m *memoryRepo) Update(_ context.Context, id uuid.UUID, userID uuid.UUID, params repository.UpdateSourceParams) (repository.Source, error) {
	src, ok := m.sources[id]
	if !ok || src.UserID != userID {
		return repository.Source{}, repository.ErrNotFound
	}
	if params.Name != nil {
		src.Name = *params.Name
	}
	if params.Icon != nil {
		src.Icon = *params.Icon
	}
	if params.Color != nil {
		src.Color = *params.Color
	}
	if params.IsActive != nil {
		src.IsActive = *params.IsActive
	}
	m.sources[id] = src
	return src, nil
}

func (m *memoryRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	src, ok := m.sources[id]
	if !ok || src.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.sources, id)
	return nil
}

func TestResolveRegisteredSourceIsCaseInsensitive(t *testing.T) {
	svc := New(newMemoryRepo())
	userID := uuid.New()
	ctx := context.Background()

	if _, err := svc.Create(ctx, userID, transport.CreateSourceRequest{Name: "Facebook", Icon: "facebook", Color: "#1877f2"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	display, err := svc.Resolve(ctx, userID, "FACEBOOK")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if display.Name != "Facebook" || display.Icon != "facebook" || display.Color != "#1877f2" {
		t.Fatalf("unexpected display: %+v", display)
	}
}

func TestResolveUnknownSourceFallsBack(t *testing.T) {
	svc := New(newMemoryRepo())
	userID := uuid.New()

	display, err := svc.Resolve(context.Background(), userID, "cold call")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if display.Name != "Cold Call" {
		t.Fatalf("expected title-cased name, got %q", display.Name)
	}
	if display.Icon != DefaultIcon || display.Color != DefaultColor {
		t.Fatalf("expected default display config, got %+v", display)
	}
}

func TestUnknownIconFallsBackToGlobe(t *testing.T) {
	svc := New(newMemoryRepo())
	userID := uuid.New()
	ctx := context.Background()

	src, err := svc.Create(ctx, userID, transport.CreateSourceRequest{Name: "Billboard", Icon: "hologram"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if src.Icon != DefaultIcon {
		t.Fatalf("expected icon %q, got %q", DefaultIcon, src.Icon)
	}
}

func TestEnsureRegisteredRecordsNewSourceOnce(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	userID := uuid.New()
	ctx := context.Background()

	if err := svc.EnsureRegistered(ctx, userID, "cold call"); err != nil {
		t.Fatalf("EnsureRegistered: %v", err)
	}

	src, err := repo.GetByName(ctx, userID, "cold call")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if src.Name != "Cold Call" || src.Icon != DefaultIcon || src.Color != DefaultColor {
		t.Fatalf("unexpected registered source: %+v", src)
	}
	if !src.IsActive {
		t.Fatal("auto-registered sources must be active")
	}

	if err := svc.EnsureRegistered(ctx, userID, "Cold Call"); err != nil {
		t.Fatalf("EnsureRegistered repeat: %v", err)
	}
	list, err := repo.List(ctx, userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected a single registration, got %d", len(list))
	}
}

func TestEnsureRegisteredLeavesExistingSourceUntouched(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	userID := uuid.New()
	ctx := context.Background()

	created, err := svc.Create(ctx, userID, transport.CreateSourceRequest{Name: "Facebook", Icon: "facebook", Color: "#1877f2"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.EnsureRegistered(ctx, userID, "facebook"); err != nil {
		t.Fatalf("EnsureRegistered: %v", err)
	}
	src, err := repo.GetByName(ctx, userID, "Facebook")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if src.ID != created.ID || src.Icon != "facebook" || src.Color != "#1877f2" {
		t.Fatalf("existing registration changed: %+v", src)
	}
}

func TestDuplicateNameRejected(t *testing.T) {
	svc := New(newMemoryRepo())
	userID := uuid.New()
	ctx := context.Background()

	if _, err := svc.Create(ctx, userID, transport.CreateSourceRequest{Name: "Referral"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, userID, transport.CreateSourceRequest{Name: "referral"}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestListActiveExcludesDisabled(t *testing.T) {
	svc := New(newMemoryRepo())
	userID := uuid.New()
	ctx := context.Background()

	active, err := svc.Create(ctx, userID, transport.CreateSourceRequest{Name: "Website"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	disabled := false
	if _, err := svc.Create(ctx, userID, transport.CreateSourceRequest{Name: "Newspaper", IsActive: &disabled}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.ListActive(ctx, userID)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].ID != active.ID {
		t.Fatalf("expected only the active source, got %+v", list.Items)
	}
}

func TestTenantIsolation(t *testing.T) {
	svc := New(newMemoryRepo())
	owner := uuid.New()
	intruder := uuid.New()
	ctx := context.Background()

	src, err := svc.Create(ctx, owner, transport.CreateSourceRequest{Name: "Instagram", Icon: "instagram"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, intruder, src.ID); !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("foreign delete: expected ErrSourceNotFound, got %v", err)
	}

	display, err := svc.Resolve(ctx, intruder, "Instagram")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if display.Icon != DefaultIcon {
		t.Fatalf("foreign tenant must get the fallback display, got %+v", display)
	}
}

func TestOperationsRequireAuthentication(t *testing.T) {
	svc := New(newMemoryRepo())
	ctx := context.Background()

	if _, err := svc.List(ctx, uuid.Nil); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("List: expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := svc.Create(ctx, uuid.Nil, transport.CreateSourceRequest{Name: "x"}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("Create: expected ErrNotAuthenticated, got %v", err)
	}
}
