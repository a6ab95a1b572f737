package service

import (
	"context"
	"errors"
	"time"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/store"
	"github.com/parleyhq/parley/pkg/idx"
	"github.com/parleyhq/parley/pkg/slogx"
)

var ErrContactNotFound = errors.New("contact not found")

type ContactService struct {
	Store store.Store
}

// CreateContact adds a contact under ownerUserID.
func (s *ContactService) CreateContact(ctx context.Context, ownerUserID, name, phone, email string) (domain.Contact, error) {
	now := time.Now().UTC()
	c := domain.Contact{
		ID:          idx.New().String(),
		OwnerUserID: ownerUserID,
		Name:        name,
		Phone:       phone,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Contacts().CreateContact(ctx, c); err != nil {
		return domain.Contact{}, err
	}

	slogx.FromContext(ctx).Info("contact created", "contact_id", c.ID, "owner_user_id", ownerUserID)
	return c, nil
}

// ListContacts returns the owner's contacts, newest first.
func (s *ContactService) ListContacts(ctx context.Context, ownerUserID string) ([]domain.Contact, error) {
	return s.Store.Contacts().ListContactsByOwner(ctx, ownerUserID)
}

// getOwnedContact loads a contact and hides other tenants' contacts behind
// ErrContactNotFound.
func getOwnedContact(ctx context.Context, st store.Store, ownerUserID, contactID string) (domain.Contact, error) {
	c, err := st.Contacts().GetContactByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Contact{}, ErrContactNotFound
		}
		return domain.Contact{}, err
	}
	if c.OwnerUserID != ownerUserID {
		return domain.Contact{}, ErrContactNotFound
	}
	return c, nil
}
