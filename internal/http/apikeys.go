package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/service"
	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/parleysdk"
	"github.com/parleyhq/parley/pkg/slogx"
)

// APIKeysHandler serves the API key management endpoints. These routes are
// session-only; see RequireSession.
type APIKeysHandler struct {
	APIKeyService *service.APIKeyService
}

// HandleCreate handles POST /v1/apikeys
//
//	@Summary		Create an API key
//	@Description	Mints a new API key owned by the calling user. The raw key is
//	@Description	returned exactly once and only its hash is stored.
//	@Tags			APIKeys
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		parleysdk.CreateAPIKeyRequest	true	"Key name, permissions and optional expiry"
//	@Success		201		{object}	parleysdk.CreateAPIKeyResponse	"key, api_key"
//	@Failure		400		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		401		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		403		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		500		{object}	parleysdk.ErrorResponse			"code, message"
//	@Router			/v1/apikeys [post].
func (h *APIKeysHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		parleysdk.ErrAuthRequired.WriteError(w)
		return
	}

	var req parleysdk.CreateAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		parleysdk.ErrInvalidBody.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		parleysdk.NewAPIError(http.StatusBadRequest, parleysdk.ErrorCodeValidation,
			"key name is required").WriteError(w)
		return
	}

	key, rawKey, err := h.APIKeyService.CreateAPIKey(ctx, identity.UserID, req.Name, req.Permissions, req.ExpiresAt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPermission):
			parleysdk.NewAPIError(http.StatusBadRequest, parleysdk.ErrorCodeValidation,
				err.Error()).WriteError(w)
		case errors.Is(err, service.ErrInvalidExpiry):
			parleysdk.NewAPIError(http.StatusBadRequest, parleysdk.ErrorCodeValidation,
				"expires_at must be in the future").WriteError(w)
		default:
			log.Error("failed to create api key", "error", err)
			parleysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, parleysdk.CreateAPIKeyResponse{
		Key:    rawKey,
		APIKey: apiKeyInfo(key),
	})
}

// HandleList handles GET /v1/apikeys
//
//	@Summary		List the caller's API keys
//	@Description	Returns all of the calling user's keys, newest first, including
//	@Description	revoked and expired ones. Raw key material is never included.
//	@Tags			APIKeys
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	parleysdk.ListAPIKeysResponse	"api_keys"
//	@Failure		401	{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		403	{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		500	{object}	parleysdk.ErrorResponse			"code, message"
//	@Router			/v1/apikeys [get].
func (h *APIKeysHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		parleysdk.ErrAuthRequired.WriteError(w)
		return
	}

	keys, err := h.APIKeyService.ListAPIKeys(ctx, identity.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list api keys", "error", err)
		parleysdk.ErrServerError.WriteError(w)
		return
	}

	infos := make([]parleysdk.APIKeyInfo, len(keys))
	for i, key := range keys {
		infos[i] = apiKeyInfo(key)
	}

	httpx.WriteJSON(w, http.StatusOK, parleysdk.ListAPIKeysResponse{APIKeys: infos})
}

// HandleRevoke handles DELETE /v1/apikeys/{id}
//
//	@Summary		Revoke an API key
//	@Description	Marks one of the caller's keys as revoked. The record is kept;
//	@Description	revocation is permanent and idempotent.
//	@Tags			APIKeys
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path	string	true	"API key ID (ULID)"
//	@Success		204	"Key revoked"
//	@Failure		401	{object}	parleysdk.ErrorResponse	"code, message"
//	@Failure		403	{object}	parleysdk.ErrorResponse	"code, message"
//	@Failure		404	{object}	parleysdk.ErrorResponse	"code, message"
//	@Failure		500	{object}	parleysdk.ErrorResponse	"code, message"
//	@Router			/v1/apikeys/{id} [delete].
func (h *APIKeysHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		parleysdk.ErrAuthRequired.WriteError(w)
		return
	}

	keyID := r.PathValue("id")
	if err := h.APIKeyService.RevokeAPIKey(ctx, identity.UserID, keyID); err != nil {
		if errors.Is(err, service.ErrKeyNotFound) {
			parleysdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to revoke api key", "error", err, "key_id", keyID)
		parleysdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func apiKeyInfo(key domain.APIKey) parleysdk.APIKeyInfo {
	return parleysdk.APIKeyInfo{
		ID:          key.ID,
		Name:        key.Name,
		KeyPrefix:   key.KeyPrefix,
		Permissions: key.Permissions.Slice(),
		CreatedAt:   key.CreatedAt,
		ExpiresAt:   key.ExpiresAt,
		RevokedAt:   key.RevokedAt,
		LastUsedAt:  key.LastUsedAt,
	}
}
