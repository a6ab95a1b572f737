package parleysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// API key management. These operations require a bearer-token session;
// an API key cannot mint, list or revoke keys.

// CreateAPIKey creates a new API key owned by the session's user. The
// response contains the full key material, which is never shown again.
func (s *Session) CreateAPIKey(ctx context.Context, req CreateAPIKeyRequest) (*CreateAPIKeyResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/apikeys", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var created CreateAPIKeyResponse
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// ListAPIKeys lists the session user's API keys, including revoked and
// expired ones. Key metadata only; raw keys are never returned.
func (s *Session) ListAPIKeys(ctx context.Context) ([]APIKeyInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/apikeys", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListAPIKeysResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.APIKeys, nil
}

// RevokeAPIKey revokes one of the session user's API keys. Revocation is
// permanent; the key record is kept for audit but never validates again.
func (s *Session) RevokeAPIKey(ctx context.Context, keyID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/apikeys/"+keyID, nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
