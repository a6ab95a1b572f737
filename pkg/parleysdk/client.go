package parleysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Parley API. It provides access to
// unauthenticated operations and creates authenticated Sessions and
// KeySessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new Parley API client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges an email and password for an authenticated Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	tokenResp, err := c.LoginToken(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp), nil
}

// LoginToken exchanges an email and password for a raw token pair. Most
// callers want Login, which wraps the pair in an auto-refreshing Session.
func (c *SDKClient) LoginToken(ctx context.Context, email, password string) (*TokenResponse, error) {
	body, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

// RefreshToken exchanges a refresh token for a fresh token pair. The
// presented refresh token remains valid until its own expiry.
func (c *SDKClient) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	body, err := json.Marshal(RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, fmt.Errorf("failed to encode refresh request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/refresh", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

// NewSessionFromTokens creates an authenticated session from existing
// tokens, e.g. tokens persisted from a previous login. The session still
// auto-refreshes when the access token expires.
func (c *SDKClient) NewSessionFromTokens(accessToken, refreshToken string, expiresAt time.Time) *Session {
	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		expiresAt:    expiresAt.Add(-refreshBuffer),
	}
}

// WithAPIKey creates a KeySession that authenticates every request with the
// given raw API key.
func (c *SDKClient) WithAPIKey(rawKey string) *KeySession {
	return &KeySession{
		client: c,
		apiKey: rawKey,
	}
}
