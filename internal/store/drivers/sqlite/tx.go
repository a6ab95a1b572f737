package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/parleyhq/parley/internal/store"
)

// txStore is a Store view scoped to a single transaction. Repos issued from
// it run their statements on the transaction instead of the pool.
type txStore struct {
	tx *sqlx.Tx
}

var _ store.Tx = (*txStore)(nil)

func (t *txStore) Users() store.Users       { return &usersRepo{q: t.tx} }
func (t *txStore) APIKeys() store.APIKeys   { return &apiKeysRepo{q: t.tx} }
func (t *txStore) Contacts() store.Contacts { return &contactsRepo{q: t.tx} }
func (t *txStore) Messages() store.Messages { return &messagesRepo{q: t.tx} }

// ApplyMigrations is a no-op inside a transaction.
func (t *txStore) ApplyMigrations() error { return nil }

// Tx fails, nested transactions are not supported.
func (t *txStore) Tx(_ context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

// WithTx runs fn against the current transaction rather than opening a new
// one, so helpers that take a store.Store work unchanged inside a Tx.
func (t *txStore) WithTx(_ context.Context, fn func(tx store.Tx) error) error {
	return fn(t)
}

// Close is a no-op, the parent store owns the connection.
func (t *txStore) Close() error { return nil }

// Ping is a no-op inside a transaction.
func (t *txStore) Ping(_ context.Context) error { return nil }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }
