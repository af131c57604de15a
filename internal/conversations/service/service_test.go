package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"leadvault_backend/internal/conversations/repository"
	"leadvault_backend/internal/conversations/transport"
)

type memoryRepo struct {
	ownedLeads    map[uuid.UUID]uuid.UUID
	conversations map[uuid.UUID]repository.Conversation
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		ownedLeads:    make(map[uuid.UUID]uuid.UUID),
		conversations: make(map[uuid.UUID]repository.Conversation),
	}
}

func (m *memoryRepo) addLead(userID uuid.UUID) uuid.UUID {
	id := uuid.New()
	m.ownedLeads[id] = userID
	return id
}

func (m *memoryRepo) ListByLead(_ context.Context, leadID uuid.UUID, userID uuid.UUID) ([]repository.Conversation, error) {
	var out []repository.Conversation
	for _, conv := range m.conversations {
		if conv.LeadID == leadID && conv.UserID == userID {
			out = append(out, conv)
		}
	}
	return out, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID, userID uuid.UUID) (repository.Conversation, error) {
	conv, ok := m.conversations[id]
	if !ok || conv.UserID != userID {
		return repository.Conversation{}, repository.ErrNotFound
	}
	return conv, nil
}

func (m *memoryRepo) Create(_ context.Context, leadID uuid.UUID, userID uuid.UUID, date time.Time, content string) (repository.Conversation, error) {
	owner, ok := m.ownedLeads[leadID]
	if !ok || owner != userID {
		return repository.Conversation{}, repository.ErrLeadNotFound
	}
	conv := repository.Conversation{
		ID:        uuid.New(),
		LeadID:    leadID,
		UserID:    userID,
		Date:      date,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	m.conversations[conv.ID] = conv
	return conv, nil
}

func (m *memoryRepo) Update(_ context.Context, id uuid.UUID, userID uuid.UUID, date time.Time, content string) (repository.Conversation, error) {
	conv, ok := m.conversations[id]
	if !ok || conv.UserID != userID {
		return repository.Conversation{}, repository.ErrNotFound
	}
	conv.Date = date
	conv.Content = content
	m.conversations[id] = conv
	return conv, nil
}

func (m *memoryRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	conv, ok := m.conversations[id]
	if !ok || conv.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.conversations, id)
	return nil
}

func TestCreateDefaultsDateToNow(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	userID := uuid.New()
	leadID := repo.addLead(userID)

	conv, err := svc.Create(context.Background(), userID, leadID, transport.CreateConversationRequest{Content: "intro call"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !conv.Date.Equal(fixed) {
		t.Fatalf("expected date %v, got %v", fixed, conv.Date)
	}
}

func TestCreateRejectsForeignLead(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	leadID := repo.addLead(uuid.New())

	if _, err := svc.Create(context.Background(), uuid.New(), leadID, transport.CreateConversationRequest{Content: "x"}); !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

func TestUpdateKeepsUnchangedFields(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	userID := uuid.New()
	leadID := repo.addLead(userID)
	ctx := context.Background()

	conv, err := svc.Create(ctx, userID, leadID, transport.CreateConversationRequest{Content: "first note"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	content := "revised note"
	updated, err := svc.Update(ctx, userID, conv.ID, transport.UpdateConversationRequest{Content: &content})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Content != content {
		t.Fatalf("expected updated content, got %q", updated.Content)
	}
	if !updated.Date.Equal(conv.Date) {
		t.Fatalf("date must survive a content-only update: had %v, got %v", conv.Date, updated.Date)
	}
}

func TestDeleteIsTenantScoped(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo)
	userID := uuid.New()
	leadID := repo.addLead(userID)
	ctx := context.Background()

	conv, err := svc.Create(ctx, userID, leadID, transport.CreateConversationRequest{Content: "note"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, uuid.New(), conv.ID); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("foreign delete: expected ErrConversationNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, userID, conv.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestOperationsRequireAuthentication(t *testing.T) {
	svc := New(newMemoryRepo())
	ctx := context.Background()

	if _, err := svc.ListByLead(ctx, uuid.Nil, uuid.New()); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("ListByLead: expected ErrNotAuthenticated, got %v", err)
	}
	if err := svc.Delete(ctx, uuid.Nil, uuid.New()); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("Delete: expected ErrNotAuthenticated, got %v", err)
	}
}
