package parleysdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionAutoRefresh(t *testing.T) {
	var refreshCalls int

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++

		var req RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.RefreshToken != "refresh-1" {
			ErrInvalidToken.WriteError(w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(TokenResponse{
			AccessToken:  "access-2",
			RefreshToken: "refresh-1",
			TokenType:    "Bearer",
			ExpiresAt:    time.Now().Add(15 * time.Minute),
		})
	})
	mux.HandleFunc("GET /v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-2" {
			ErrExpiredToken.WriteError(w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(MeResponse{
			UserID:     "user-1",
			Email:      "alice@example.com",
			Role:       "member",
			AuthMethod: "session",
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewSDKClient(srv.URL)

	// The stored access token is already past its expiry, so the first
	// authenticated call must refresh before hitting /v1/auth/me.
	session := client.NewSessionFromTokens("access-1", "refresh-1", time.Now().Add(-time.Minute))

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "user-1", me.UserID)
	require.Equal(t, "session", me.AuthMethod)

	require.Equal(t, 1, refreshCalls)
	require.Equal(t, "access-2", session.AccessToken())

	// A second call reuses the fresh token without another refresh.
	_, err = session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, refreshCalls)
}

func TestSessionRefreshFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		ErrExpiredToken.WriteError(w)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewSDKClient(srv.URL)
	session := client.NewSessionFromTokens("stale", "also-stale", time.Now().Add(-time.Minute))

	_, err := session.Me(t.Context())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to refresh token")
}

func TestKeySessionSetsHeader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/contacts", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "pk_test_key" {
			ErrInvalidAPIKey.WriteError(w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ListContactsResponse{
			Contacts: []Contact{{ID: "c1", Name: "Bob"}},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	keys := NewSDKClient(srv.URL).WithAPIKey("pk_test_key")

	contacts, err := keys.ListContacts(t.Context())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.Equal(t, "Bob", contacts[0].Name)
}
