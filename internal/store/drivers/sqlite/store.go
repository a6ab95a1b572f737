// Package sqlite implements store.Store on top of SQLite. The driver is pure
// Go (modernc.org/sqlite) so builds stay CGO-free.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/parleyhq/parley/internal/store"
)

// Store is the SQLite-backed implementation of store.Store.
type Store struct {
	db *sqlx.DB
}

var _ store.Store = (*Store)(nil)

// NewStore opens (creating if necessary) the SQLite database at dsn.
// Call ApplyMigrations before first use.
func NewStore(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite doesn't support concurrent writes, so a single connection
	// avoids SQLITE_BUSY errors under load.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Users() store.Users       { return &usersRepo{q: s.db} }
func (s *Store) APIKeys() store.APIKeys   { return &apiKeysRepo{q: s.db} }
func (s *Store) Contacts() store.Contacts { return &contactsRepo{q: s.db} }
func (s *Store) Messages() store.Messages { return &messagesRepo{q: s.db} }

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &txStore{tx: tx}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// mapNotFound converts sql.ErrNoRows into store.ErrNotFound so callers never
// depend on database/sql directly.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict converts SQLite unique constraint violations into
// store.ErrAlreadyExists. modernc.org/sqlite has no exported error type for
// constraint failures, so the message is all we have to go on.
func mapConflict(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
