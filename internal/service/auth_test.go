package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/pkg/tokenx"
)

func TestLogin(t *testing.T) {
	st := newTestStore(t)
	codec := newTestCodec()
	svc := &AuthService{Store: st, Codec: codec}
	ctx := t.Context()

	u := seedTestUser(t, st, "alice@example.com", "correct-horse-battery", domain.RoleMember)

	t.Run("valid credentials issue a verifiable pair", func(t *testing.T) {
		user, pair, err := svc.Login(ctx, "alice@example.com", "correct-horse-battery")
		require.NoError(t, err)
		require.Equal(t, u.ID, user.ID)
		require.Equal(t, tokenx.TokenTypeBearer, pair.TokenType)

		claims, err := codec.VerifyAccess(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.UserID)
		require.Equal(t, "alice@example.com", claims.Email)
		require.Equal(t, domain.RoleMember, claims.Role)

		_, err = codec.VerifyRefresh(pair.RefreshToken)
		require.NoError(t, err)
	})

	t.Run("email is trimmed and case-insensitive", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "  ALICE@Example.com ", "correct-horse-battery")
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "correct-horse-battery")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	st := newTestStore(t)
	codec := newTestCodec()
	svc := &AuthService{Store: st, Codec: codec}
	ctx := t.Context()

	pair, err := codec.IssuePair("user-1", "alice@example.com", domain.RoleMember)
	require.NoError(t, err)

	t.Run("refresh token yields a new pair", func(t *testing.T) {
		renewed, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)

		claims, err := codec.VerifyAccess(renewed.AccessToken)
		require.NoError(t, err)
		require.Equal(t, "user-1", claims.UserID)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, pair.AccessToken)
		require.ErrorIs(t, err, tokenx.ErrInvalidToken)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-token")
		require.ErrorIs(t, err, tokenx.ErrInvalidToken)
	})
}
