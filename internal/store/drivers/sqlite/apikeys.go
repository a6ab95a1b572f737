package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/store"
)

type apiKeysRepo struct {
	q sqlx.ExtContext
}

var _ store.APIKeys = (*apiKeysRepo)(nil)

type apiKeyRow struct {
	ID          string       `db:"id"`
	OwnerUserID string       `db:"owner_user_id"`
	Name        string       `db:"name"`
	KeyHash     string       `db:"key_hash"`
	KeyPrefix   string       `db:"key_prefix"`
	Permissions string       `db:"permissions"`
	ExpiresAt   sql.NullTime `db:"expires_at"`
	RevokedAt   sql.NullTime `db:"revoked_at"`
	LastUsedAt  sql.NullTime `db:"last_used_at"`
	CreatedAt   time.Time    `db:"created_at"`
}

func (r apiKeyRow) toDomain() (domain.APIKey, error) {
	var perms domain.PermissionSet
	if err := json.Unmarshal([]byte(r.Permissions), &perms); err != nil {
		return domain.APIKey{}, fmt.Errorf("decode permissions for key %s: %w", r.ID, err)
	}

	return domain.APIKey{
		ID:          r.ID,
		OwnerUserID: r.OwnerUserID,
		Name:        r.Name,
		KeyHash:     r.KeyHash,
		KeyPrefix:   r.KeyPrefix,
		Permissions: perms,
		ExpiresAt:   timePtr(r.ExpiresAt),
		RevokedAt:   timePtr(r.RevokedAt),
		LastUsedAt:  timePtr(r.LastUsedAt),
		CreatedAt:   r.CreatedAt.UTC(),
	}, nil
}

func apiKeyRowFrom(k domain.APIKey) (apiKeyRow, error) {
	perms, err := json.Marshal(k.Permissions)
	if err != nil {
		return apiKeyRow{}, fmt.Errorf("encode permissions: %w", err)
	}

	return apiKeyRow{
		ID:          k.ID,
		OwnerUserID: k.OwnerUserID,
		Name:        k.Name,
		KeyHash:     k.KeyHash,
		KeyPrefix:   k.KeyPrefix,
		Permissions: string(perms),
		ExpiresAt:   nullTime(k.ExpiresAt),
		RevokedAt:   nullTime(k.RevokedAt),
		LastUsedAt:  nullTime(k.LastUsedAt),
		CreatedAt:   k.CreatedAt.UTC(),
	}, nil
}

func (r *apiKeysRepo) CreateAPIKey(ctx context.Context, k domain.APIKey) error {
	row, err := apiKeyRowFrom(k)
	if err != nil {
		return err
	}

	_, err = sqlx.NamedExecContext(ctx, r.q, `
		INSERT INTO api_keys (id, owner_user_id, name, key_hash, key_prefix, permissions,
		                      expires_at, revoked_at, last_used_at, created_at)
		VALUES (:id, :owner_user_id, :name, :key_hash, :key_prefix, :permissions,
		        :expires_at, :revoked_at, :last_used_at, :created_at)`,
		row)
	return mapConflict(err)
}

func (r *apiKeysRepo) GetAPIKeyByHash(ctx context.Context, hash string) (domain.APIKey, error) {
	var row apiKeyRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT * FROM api_keys WHERE key_hash = ?`, hash)
	if err != nil {
		return domain.APIKey{}, mapNotFound(err)
	}
	return row.toDomain()
}

func (r *apiKeysRepo) GetAPIKeyByID(ctx context.Context, id string) (domain.APIKey, error) {
	var row apiKeyRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT * FROM api_keys WHERE id = ?`, id)
	if err != nil {
		return domain.APIKey{}, mapNotFound(err)
	}
	return row.toDomain()
}

func (r *apiKeysRepo) ListAPIKeysByOwner(ctx context.Context, ownerUserID string) ([]domain.APIKey, error) {
	var rows []apiKeyRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT * FROM api_keys WHERE owner_user_id = ? ORDER BY created_at DESC, id DESC`,
		ownerUserID)
	if err != nil {
		return nil, err
	}

	keys := make([]domain.APIKey, 0, len(rows))
	for _, row := range rows {
		key, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *apiKeysRepo) RevokeAPIKey(ctx context.Context, id string, revokedAt time.Time) error {
	// The revoked_at IS NULL guard makes revocation idempotent while
	// keeping the original timestamp intact.
	_, err := r.q.ExecContext(ctx,
		`UPDATE api_keys SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`,
		revokedAt.UTC(), id)
	return err
}

func (r *apiKeysRepo) UpdateAPIKeyLastUsed(ctx context.Context, id string, usedAt time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE api_keys SET last_used_at = ? WHERE id = ?`,
		usedAt.UTC(), id)
	return err
}
