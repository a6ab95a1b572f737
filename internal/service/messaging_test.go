package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/internal/domain"
)

func TestContacts(t *testing.T) {
	st := newTestStore(t)
	svc := &ContactService{Store: st}
	ctx := t.Context()

	alice := seedTestUser(t, st, "alice@example.com", "password123", domain.RoleMember)
	bob := seedTestUser(t, st, "bob@example.com", "password123", domain.RoleMember)

	c, err := svc.CreateContact(ctx, alice.ID, "Charlie", "+61400000001", "charlie@example.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, c.OwnerUserID)

	t.Run("lists are tenant-scoped", func(t *testing.T) {
		mine, err := svc.ListContacts(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, "Charlie", mine[0].Name)

		theirs, err := svc.ListContacts(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, theirs)
	})
}

func TestMessages(t *testing.T) {
	st := newTestStore(t)
	contacts := &ContactService{Store: st}
	svc := &MessageService{Store: st}
	ctx := t.Context()

	alice := seedTestUser(t, st, "alice@example.com", "password123", domain.RoleMember)
	bob := seedTestUser(t, st, "bob@example.com", "password123", domain.RoleMember)

	contact, err := contacts.CreateContact(ctx, alice.ID, "Charlie", "", "")
	require.NoError(t, err)

	t.Run("send records an outbound message", func(t *testing.T) {
		m, err := svc.SendMessage(ctx, alice.ID, contact.ID, "hello")
		require.NoError(t, err)
		require.Equal(t, domain.DirectionOutbound, m.Direction)
		require.Equal(t, contact.ID, m.ContactID)
		require.Equal(t, alice.ID, m.OwnerUserID)
	})

	t.Run("thread is newest first", func(t *testing.T) {
		_, err := svc.SendMessage(ctx, alice.ID, contact.ID, "anyone home?")
		require.NoError(t, err)

		thread, err := svc.ListMessages(ctx, alice.ID, contact.ID)
		require.NoError(t, err)
		require.Len(t, thread, 2)
		require.Equal(t, "anyone home?", thread[0].Body)
		require.Equal(t, "hello", thread[1].Body)
	})

	t.Run("cannot message another tenant's contact", func(t *testing.T) {
		_, err := svc.SendMessage(ctx, bob.ID, contact.ID, "hi")
		require.ErrorIs(t, err, ErrContactNotFound)
	})

	t.Run("cannot read another tenant's thread", func(t *testing.T) {
		_, err := svc.ListMessages(ctx, bob.ID, contact.ID)
		require.ErrorIs(t, err, ErrContactNotFound)
	})

	t.Run("unknown contact", func(t *testing.T) {
		_, err := svc.SendMessage(ctx, alice.ID, "nope", "hi")
		require.ErrorIs(t, err, ErrContactNotFound)

		_, err = svc.ListMessages(ctx, alice.ID, "nope")
		require.ErrorIs(t, err, ErrContactNotFound)
	})
}
