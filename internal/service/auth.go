package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsapi/internal/auth"
	"newsapi/internal/model"
	"newsapi/internal/repository"
)

// TokenType is the token_type reported with every session.
const TokenType = "bearer"

// AuthService defines admin login and session verification.
type AuthService interface {
	// Login checks credentials and issues a signed session token.
	Login(ctx context.Context, email, password string) (*model.Session, error)

	// Authenticate validates a session token and returns its subject.
	Authenticate(token string) (*model.Identity, error)

	// CreateSeedAdmin creates the admin unless one already exists with that email.
	// It reports whether a new admin was created.
	CreateSeedAdmin(ctx context.Context, email, password string) (bool, error)

	// ResetPassword replaces the password of an existing admin.
	ResetPassword(ctx context.Context, email, password string) error
}

type authService struct {
	repo   repository.AdminRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService constructs a new AuthService signing tokens with secret.
func NewAuthService(repo repository.AdminRepository, secret []byte, ttl time.Duration) AuthService {
	return &authService{repo: repo, secret: secret, ttl: ttl}
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(admin.Email, s.secret, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &model.Session{AccessToken: token, TokenType: TokenType, Username: admin.Email}, nil
}

func (s *authService) Authenticate(token string) (*model.Identity, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	subject, err := auth.ParseToken(token, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return &model.Identity{Email: subject}, nil
}

func (s *authService) CreateSeedAdmin(ctx context.Context, email, password string) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	if _, err := s.repo.Create(ctx, &model.Admin{Email: email, PasswordHash: hash}); err != nil {
		// Lost a race with a concurrent seed; the unique index kept one admin.
		if errors.Is(err, repository.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *authService) ResetPassword(ctx context.Context, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return translate(s.repo.UpdatePassword(ctx, email, hash))
}
