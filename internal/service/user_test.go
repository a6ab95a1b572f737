package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/pkg/cryptox"
)

func TestCreateUser(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := t.Context()

	t.Run("normalizes email and hashes the password", func(t *testing.T) {
		u, err := svc.CreateUser(ctx, " Alice@Example.com ", "Alice", "password123", domain.RoleAdmin)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", u.Email)
		require.Equal(t, domain.RoleAdmin, u.Role)
		require.NotEqual(t, "password123", u.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("password123", u.PasswordHash))
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "alice@example.com", "Other", "password456", domain.RoleMember)
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("empty role defaults to member", func(t *testing.T) {
		u, err := svc.CreateUser(ctx, "bob@example.com", "Bob", "password123", "")
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, u.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "carol@example.com", "Carol", "password123", "superuser")
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "dave@example.com", "Dave", "short", domain.RoleMember)
		require.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestSetPassword(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := t.Context()

	seedTestUser(t, st, "alice@example.com", "old-password", domain.RoleMember)

	t.Run("replaces the hash", func(t *testing.T) {
		require.NoError(t, svc.SetPassword(ctx, "alice@example.com", "new-password"))

		u, err := svc.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("new-password", u.PasswordHash))
		require.ErrorIs(t, cryptox.VerifyPassword("old-password", u.PasswordHash), cryptox.ErrPasswordMismatch)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.SetPassword(ctx, "nobody@example.com", "new-password")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("weak password", func(t *testing.T) {
		err := svc.SetPassword(ctx, "alice@example.com", "short")
		require.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestHasAnyUser(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := t.Context()

	ok, err := svc.HasAnyUser(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	seedTestUser(t, st, "alice@example.com", "password123", domain.RoleMember)

	ok, err = svc.HasAnyUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
}
