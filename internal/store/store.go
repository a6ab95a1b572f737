package store

import (
	"context"
	"errors"
	"time"

	"github.com/parleyhq/parley/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	APIKeys() APIKeys
	Contacts() Contacts
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users ordered by creation date (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type APIKeys interface {
	// CreateAPIKey inserts a new key record. Only the hash and prefix of
	// the raw key are ever stored.
	CreateAPIKey(ctx context.Context, k domain.APIKey) error

	// GetAPIKeyByHash looks a key up by its fingerprint. This is the hot
	// path for request authentication.
	GetAPIKeyByHash(ctx context.Context, hash string) (domain.APIKey, error)

	// GetAPIKeyByID returns a key by id.
	GetAPIKeyByID(ctx context.Context, id string) (domain.APIKey, error)

	// ListAPIKeysByOwner returns all of a user's keys, newest first,
	// including revoked and expired ones.
	ListAPIKeysByOwner(ctx context.Context, ownerUserID string) ([]domain.APIKey, error)

	// RevokeAPIKey stamps revoked_at. A second revocation is a no-op so
	// the original timestamp is never overwritten.
	RevokeAPIKey(ctx context.Context, id string, revokedAt time.Time) error

	// UpdateAPIKeyLastUsed stamps last_used_at. Called best-effort after
	// successful validation; lost updates are acceptable.
	UpdateAPIKeyLastUsed(ctx context.Context, id string, usedAt time.Time) error
}

type Contacts interface {
	// CreateContact inserts a new contact.
	CreateContact(ctx context.Context, c domain.Contact) error

	// GetContactByID returns a contact by id.
	GetContactByID(ctx context.Context, id string) (domain.Contact, error)

	// ListContactsByOwner returns a user's contacts, newest first.
	ListContactsByOwner(ctx context.Context, ownerUserID string) ([]domain.Contact, error)
}

type Messages interface {
	// CreateMessage appends a message to a contact's history.
	CreateMessage(ctx context.Context, m domain.Message) error

	// ListMessagesByContact returns one contact's history, newest first.
	// Scoped by owner so a key can never read across users.
	ListMessagesByContact(ctx context.Context, ownerUserID, contactID string) ([]domain.Message, error)
}
