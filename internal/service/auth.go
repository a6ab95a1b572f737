// Package service holds the business logic between the HTTP layer and the
// store: credential checks, API key lifecycle, and the tenant-scoped CRUD
// the messaging surface needs.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/store"
	"github.com/parleyhq/parley/pkg/cryptox"
	"github.com/parleyhq/parley/pkg/slogx"
	"github.com/parleyhq/parley/pkg/tokenx"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Store store.Store
	Codec *tokenx.Codec
}

// Login verifies an email/password pair and issues a fresh token pair.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, tokenx.TokenPair, error) {
	l := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, tokenx.TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, tokenx.TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", "user_id", user.ID)
		return domain.User{}, tokenx.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.Codec.IssuePair(user.ID, user.Email, user.Role)
	if err != nil {
		l.Error("failed to issue token pair", "error", err, "user_id", user.ID)
		return domain.User{}, tokenx.TokenPair{}, err
	}

	l.Info("user logged in", "user_id", user.ID)
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The presented
// refresh token keeps its original validity window.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (tokenx.TokenPair, error) {
	pair, err := s.Codec.Refresh(refreshToken)
	if err != nil {
		slogx.FromContext(ctx).Info("token refresh rejected")
		return tokenx.TokenPair{}, err
	}
	return pair, nil
}
