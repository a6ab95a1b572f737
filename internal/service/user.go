package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/store"
	"github.com/parleyhq/parley/pkg/cryptox"
	"github.com/parleyhq/parley/pkg/idx"
	"github.com/parleyhq/parley/pkg/slogx"
)

const minPasswordLen = 8

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidRole  = errors.New("invalid role")
	ErrWeakPassword = errors.New("password must be at least 8 characters")
)

type UserService struct {
	Store store.Store
}

// CreateUser provisions a user with an argon2id password hash. An empty role
// defaults to member.
func (s *UserService) CreateUser(ctx context.Context, email, name, password, role string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if role == "" {
		role = domain.RoleMember
	}
	if role != domain.RoleAdmin && role != domain.RoleMember {
		return domain.User{}, ErrInvalidRole
	}
	if len(password) < minPasswordLen {
		return domain.User{}, ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		l.Error("failed to create user", "error", err)
		return domain.User{}, err
	}

	l.Info("user created", "user_id", u.ID, "email", email, "role", role)
	return u, nil
}

// GetUserByEmail resolves a user for operator tooling.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// ListUsers returns all users, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// SetPassword replaces a user's password hash. Operator tooling; there is no
// self-service reset flow.
func (s *UserService) SetPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}

	u, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("password updated", "user_id", u.ID)
	return nil
}

// HasAnyUser reports whether at least one user exists. Used at boot to nudge
// operators towards creating the first admin.
func (s *UserService) HasAnyUser(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}
