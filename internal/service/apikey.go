package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/store"
	"github.com/parleyhq/parley/pkg/cryptox"
	"github.com/parleyhq/parley/pkg/idx"
	"github.com/parleyhq/parley/pkg/slogx"
)

const (
	// apiKeyPrefix marks raw keys so they are recognizable in configs and
	// secret scanners.
	apiKeyPrefix = "pk_"

	// apiKeyDisplayLen is how much of the raw key is kept for display.
	apiKeyDisplayLen = 12

	// lastUsedWriteTimeout bounds the detached last-used stamp.
	lastUsedWriteTimeout = 5 * time.Second
)

var (
	ErrKeyNotFound = errors.New("api key not found")
	ErrKeyExpired  = errors.New("api key expired")
	ErrKeyRevoked  = errors.New("api key revoked")

	ErrUnknownPermission = errors.New("unknown permission")
	ErrInvalidExpiry     = errors.New("expiry must be in the future")
)

type APIKeyService struct {
	Store store.Store
}

// Validate checks a presented raw key and returns its record when the key is
// usable. Lookup is by SHA-256 fingerprint so the raw key never reaches the
// database, its logs, or a timing-variable comparison.
//
// Returns ErrKeyNotFound, ErrKeyRevoked, or ErrKeyExpired for the three
// business outcomes; any other error is an infrastructure failure and must
// not be treated as "key does not exist".
func (s *APIKeyService) Validate(ctx context.Context, rawKey string) (*domain.APIKey, error) {
	now := time.Now()

	hash := cryptox.FingerprintToken(rawKey)
	key, err := s.Store.APIKeys().GetAPIKeyByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("lookup api key: %w", err)
	}

	// Revocation takes precedence over expiry.
	if key.Revoked() {
		return nil, ErrKeyRevoked
	}
	if key.Expired(now) {
		return nil, ErrKeyExpired
	}

	// Best-effort usage stamp, detached from the request so a slow write
	// can never block or fail validation. Lost updates under races are
	// acceptable.
	go func() {
		dctx, cancel := context.WithTimeout(context.Background(), lastUsedWriteTimeout)
		defer cancel()
		_ = s.Store.APIKeys().UpdateAPIKeyLastUsed(dctx, key.ID, now)
	}()

	return &key, nil
}

// CreateAPIKey mints a key for ownerUserID. The raw key is returned exactly
// once; only its fingerprint and display prefix are stored. The permission
// set is fixed at creation.
func (s *APIKeyService) CreateAPIKey(
	ctx context.Context,
	ownerUserID, name string,
	permissions []string,
	expiresAt *time.Time,
) (domain.APIKey, string, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	for _, p := range permissions {
		if !slices.Contains(domain.AllPermissions, p) {
			return domain.APIKey{}, "", fmt.Errorf("%w: %q", ErrUnknownPermission, p)
		}
	}
	if expiresAt != nil && !expiresAt.After(now) {
		return domain.APIKey{}, "", ErrInvalidExpiry
	}

	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate api key material", "error", err)
		return domain.APIKey{}, "", err
	}
	rawKey := apiKeyPrefix + secret

	key := domain.APIKey{
		ID:          idx.New().String(),
		OwnerUserID: ownerUserID,
		Name:        name,
		KeyHash:     cryptox.FingerprintToken(rawKey),
		KeyPrefix:   rawKey[:apiKeyDisplayLen],
		Permissions: domain.NewPermissionSet(permissions...),
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
	}

	if err := s.Store.APIKeys().CreateAPIKey(ctx, key); err != nil {
		l.Error("failed to create api key", "error", err, "owner_user_id", ownerUserID)
		return domain.APIKey{}, "", err
	}

	l.Info("api key created",
		"key_id", key.ID,
		"owner_user_id", ownerUserID,
		"name", name,
		"permissions", key.Permissions.Slice(),
	)
	return key, rawKey, nil
}

// ListAPIKeys returns the owner's keys, newest first, including revoked and
// expired ones.
func (s *APIKeyService) ListAPIKeys(ctx context.Context, ownerUserID string) ([]domain.APIKey, error) {
	return s.Store.APIKeys().ListAPIKeysByOwner(ctx, ownerUserID)
}

// RevokeAPIKey stamps RevokedAt on one of the caller's keys. Records are
// never deleted. Revoking an already-revoked key succeeds without touching
// the original timestamp.
func (s *APIKeyService) RevokeAPIKey(ctx context.Context, ownerUserID, keyID string) error {
	key, err := s.Store.APIKeys().GetAPIKeyByID(ctx, keyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrKeyNotFound
		}
		return err
	}

	// Cross-tenant probes get the same answer as a missing key.
	if key.OwnerUserID != ownerUserID {
		return ErrKeyNotFound
	}

	if err := s.Store.APIKeys().RevokeAPIKey(ctx, key.ID, time.Now().UTC()); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("api key revoked", "key_id", keyID, "owner_user_id", ownerUserID)
	return nil
}

// RevokeAPIKeyByID revokes any key without an ownership check. Operator
// tooling only; not reachable from the HTTP surface.
func (s *APIKeyService) RevokeAPIKeyByID(ctx context.Context, keyID string) error {
	if _, err := s.Store.APIKeys().GetAPIKeyByID(ctx, keyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrKeyNotFound
		}
		return err
	}

	if err := s.Store.APIKeys().RevokeAPIKey(ctx, keyID, time.Now().UTC()); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("api key revoked", "key_id", keyID)
	return nil
}
