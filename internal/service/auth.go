// Package service contains the business logic for the shop catalog API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"shopcatalog/internal/auth"
	"shopcatalog/internal/domain"
	"shopcatalog/internal/repo"
)

// TokenIssuer is the part of the token manager the auth service needs.
// Defined here, in the consumer package, so tests can inject a stub.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// AuthService implements registration and login. It owns the rule that a
// password is hashed before it reaches the repo and that login failures
// are indistinguishable: unknown username and wrong password both come
// back as domain.ErrUnauthenticated.
type AuthService struct {
	users  repo.UserRepo
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService backed by the provided repo
// and token issuer.
func NewAuthService(users repo.UserRepo, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register hashes the password and creates the user. A taken username
// surfaces as domain.ErrConflict from the repo's unique constraint.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w: username is required", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}

	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Do not reveal whether the username exists.
			return "", fmt.Errorf("service.AuthService.Login: %w", domain.ErrUnauthenticated)
		}
		return "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return token, nil
}
