package service

import (
	"context"
	"time"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/store"
	"github.com/parleyhq/parley/pkg/idx"
	"github.com/parleyhq/parley/pkg/slogx"
)

type MessageService struct {
	Store store.Store
}

// SendMessage records an outbound message after confirming the contact
// belongs to the caller.
func (s *MessageService) SendMessage(ctx context.Context, ownerUserID, contactID, body string) (domain.Message, error) {
	contact, err := getOwnedContact(ctx, s.Store, ownerUserID, contactID)
	if err != nil {
		return domain.Message{}, err
	}

	m := domain.Message{
		ID:          idx.New().String(),
		OwnerUserID: ownerUserID,
		ContactID:   contact.ID,
		Direction:   domain.DirectionOutbound,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Store.Messages().CreateMessage(ctx, m); err != nil {
		return domain.Message{}, err
	}

	slogx.FromContext(ctx).Info("message recorded",
		"message_id", m.ID,
		"contact_id", contact.ID,
		"owner_user_id", ownerUserID,
	)
	return m, nil
}

// ListMessages returns the thread with one contact, newest first. Unknown or
// foreign contacts read as not found rather than an empty thread.
func (s *MessageService) ListMessages(ctx context.Context, ownerUserID, contactID string) ([]domain.Message, error) {
	contact, err := getOwnedContact(ctx, s.Store, ownerUserID, contactID)
	if err != nil {
		return nil, err
	}
	return s.Store.Messages().ListMessagesByContact(ctx, ownerUserID, contact.ID)
}
