package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"leadvault_backend/internal/auth/repository"
	"leadvault_backend/internal/auth/token"
)

type testConfig struct{}

func (testConfig) GetJWTAccessSecret() string        { return "test-secret" }
func (testConfig) GetAccessTokenTTL() time.Duration  { return 15 * time.Minute }
func (testConfig) GetRefreshTokenTTL() time.Duration { return 24 * time.Hour }

type storedToken struct {
	userID    uuid.UUID
	expiresAt time.Time
	revoked   bool
}

type memoryRepo struct {
	users  map[string]repository.User
	tokens map[string]*storedToken
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		users:  make(map[string]repository.User),
		tokens: make(map[string]*storedToken),
	}
}

func (m *memoryRepo) CreateUser(_ context.Context, email, passwordHash string) (repository.User, error) {
	if _, exists := m.users[email]; exists {
		return repository.User{}, repository.ErrEmailTaken
	}
	user := repository.User{ID: uuid.New(), Email: email, PasswordHash: passwordHash, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.users[email] = user
	return user, nil
}

func (m *memoryRepo) GetUserByEmail(_ context.Context, email string) (repository.User, error) {
	user, ok := m.users[email]
	if !ok {
		return repository.User{}, repository.ErrNotFound
	}
	return user, nil
}

func (m *memoryRepo) GetUserByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return repository.User{}, repository.ErrNotFound
}

func (m *memoryRepo) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	for email, user := range m.users {
		if user.ID == userID {
			user.PasswordHash = passwordHash
			m.users[email] = user
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memoryRepo) CreateRefreshToken(_ context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	m.tokens[tokenHash] = &storedToken{userID: userID, expiresAt: expiresAt}
	return nil
}

func (m *memoryRepo) GetRefreshToken(_ context.Context, tokenHash string) (uuid.UUID, time.Time, error) {
	stored, ok := m.tokens[tokenHash]
	if !ok || stored.revoked {
		return uuid.Nil, time.Time{}, repository.ErrNotFound
	}
	return stored.userID, stored.expiresAt, nil
}

func (m *memoryRepo) RevokeRefreshToken(_ context.Context, tokenHash string) error {
	if stored, ok := m.tokens[tokenHash]; ok {
		stored.revoked = true
	}
	return nil
}

func (m *memoryRepo) RevokeAllRefreshTokens(_ context.Context, userID uuid.UUID) error {
	for _, stored := range m.tokens {
		if stored.userID == userID {
			stored.revoked = true
		}
	}
	return nil
}

func TestSignUpAndSignIn(t *testing.T) {
	svc := New(newMemoryRepo(), testConfig{})
	ctx := context.Background()

	if err := svc.SignUp(ctx, "ada@example.com", "correct horse battery"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if err := svc.SignUp(ctx, "ada@example.com", "another password"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate sign-up: expected ErrEmailTaken, got %v", err)
	}

	access, refresh, err := svc.SignIn(ctx, "ada@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty token pair")
	}

	if _, _, err := svc.SignIn(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.SignIn(ctx, "nobody@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := New(newMemoryRepo(), testConfig{})
	ctx := context.Background()

	if err := svc.SignUp(ctx, "ada@example.com", "correct horse battery"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	_, refresh, err := svc.SignIn(ctx, "ada@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	_, newRefresh, err := svc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if newRefresh == refresh {
		t.Fatal("refresh must issue a new token")
	}

	if _, _, err := svc.Refresh(ctx, refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("reused token: expected ErrTokenInvalid, got %v", err)
	}
}

func TestExpiredRefreshTokenRejected(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo, testConfig{})
	ctx := context.Background()

	userID := uuid.New()
	raw, err := token.Generate(48)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	repo.tokens[token.Hash(raw)] = &storedToken{userID: userID, expiresAt: time.Now().Add(-time.Minute)}

	if _, _, err := svc.Refresh(ctx, raw); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestChangePasswordRevokesSessions(t *testing.T) {
	svc := New(newMemoryRepo(), testConfig{})
	ctx := context.Background()

	if err := svc.SignUp(ctx, "ada@example.com", "correct horse battery"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	_, refresh, err := svc.SignIn(ctx, "ada@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	user, err := svc.repo.GetUserByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, "wrong", "new password 123"); !errors.Is(err, ErrInvalidCurrentPassword) {
		t.Fatalf("expected ErrInvalidCurrentPassword, got %v", err)
	}
	if err := svc.ChangePassword(ctx, user.ID, "correct horse battery", "new password 123"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, _, err := svc.Refresh(ctx, refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("old session must be revoked, got %v", err)
	}
	if _, _, err := svc.SignIn(ctx, "ada@example.com", "new password 123"); err != nil {
		t.Fatalf("sign-in with new password: %v", err)
	}
}
