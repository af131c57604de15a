package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"leadvault_backend/internal/auth/password"
	"leadvault_backend/internal/auth/repository"
	"leadvault_backend/internal/auth/token"
	"leadvault_backend/platform/config"
)

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTokenExpired           = errors.New("token expired")
	ErrTokenInvalid           = errors.New("token invalid")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
)

const accessTokenType = "access"

// UserRepository is the persistence surface the auth service depends on.
type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (repository.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, time.Time, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllRefreshTokens(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	repo UserRepository
	cfg  config.AuthServiceConfig
}

func New(repo UserRepository, cfg config.AuthServiceConfig) *Service {
	return &Service{repo: repo, cfg: cfg}
}

func (s *Service) SignUp(ctx context.Context, email, plainPassword string) error {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return err
	}

	_, err = s.repo.CreateUser(ctx, email, hash)
	if errors.Is(err, repository.ErrEmailTaken) {
		return ErrEmailTaken
	}
	return err
}

func (s *Service) SignIn(ctx context.Context, email, plainPassword string) (string, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID)
}

// Refresh rotates the refresh token: the presented token is revoked and a
// new pair is issued, so a stolen token works at most once.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	hash := token.Hash(refreshToken)
	userID, expiresAt, err := s.repo.GetRefreshToken(ctx, hash)
	if err != nil {
		return "", "", ErrTokenInvalid
	}

	if time.Now().After(expiresAt) {
		_ = s.repo.RevokeRefreshToken(ctx, hash)
		return "", "", ErrTokenExpired
	}

	_ = s.repo.RevokeRefreshToken(ctx, hash)
	return s.issueTokens(ctx, userID)
}

func (s *Service) SignOut(ctx context.Context, refreshToken string) error {
	hash := token.Hash(refreshToken)
	return s.repo.RevokeRefreshToken(ctx, hash)
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (repository.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := password.Compare(user.PasswordHash, currentPassword); err != nil {
		return ErrInvalidCurrentPassword
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	return s.repo.RevokeAllRefreshTokens(ctx, userID)
}

func (s *Service) issueTokens(ctx context.Context, userID uuid.UUID) (string, string, error) {
	accessToken, err := s.signJWT(userID, s.cfg.GetAccessTokenTTL(), accessTokenType, s.cfg.GetJWTAccessSecret())
	if err != nil {
		return "", "", err
	}

	refreshToken, err := token.Generate(48)
	if err != nil {
		return "", "", err
	}

	hash := token.Hash(refreshToken)
	expiresAt := time.Now().Add(s.cfg.GetRefreshTokenTTL())
	if err := s.repo.CreateRefreshToken(ctx, userID, hash, expiresAt); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *Service) signJWT(userID uuid.UUID, ttl time.Duration, tokenType, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": tokenType,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(secret))
}
