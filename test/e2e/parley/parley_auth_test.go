package parley_test

import (
	"net/http"
	"testing"

	"github.com/parleyhq/parley/pkg/parleysdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRefreshFlow tests the complete flow:
// 1. Seed the first admin through the CLI
// 2. Login with email and password
// 3. Inspect the identity via the me endpoint
// 4. Refresh the token pair
// 5. Verify the old refresh token still works (refresh tokens are not rotated)
func TestLoginRefreshFlow(t *testing.T) {
	container, baseURL, cleanup := setupParleyContainer(t)
	defer cleanup()

	client := parleysdk.NewSDKClient(baseURL)
	createAdminUser(t, container)

	// Login
	session := loginAdmin(t, client)
	oldRefreshToken := session.RefreshToken()

	t.Logf("Login successful")

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, me.UserID)
	require.Equal(t, adminEmail, me.Email)
	require.Equal(t, "admin", me.Role)
	require.Equal(t, "session", me.AuthMethod)

	t.Logf("Authenticated as %s (%s)", me.Email, me.UserID)

	// Refresh
	tokenResp, err := client.RefreshToken(t.Context(), oldRefreshToken)
	require.NoError(t, err)
	assertTokenResponse(t, tokenResp)

	// The fresh pair authenticates as the same user
	fresh := client.NewSessionFromTokens(tokenResp.AccessToken, tokenResp.RefreshToken, tokenResp.ExpiresAt)
	me2, err := fresh.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, me.UserID, me2.UserID)

	// The old refresh token is deliberately not rotated and keeps working
	// until its own expiry
	again, err := client.RefreshToken(t.Context(), oldRefreshToken)
	require.NoError(t, err, "Old refresh token should remain valid after refresh")
	assertTokenResponse(t, again)

	t.Logf("Refresh successful, old refresh token still accepted")
}

// TestLoginInvalidCredentials verifies that wrong passwords and unknown
// emails are rejected the same way.
func TestLoginInvalidCredentials(t *testing.T) {
	container, baseURL, cleanup := setupParleyContainer(t)
	defer cleanup()

	client := parleysdk.NewSDKClient(baseURL)
	createAdminUser(t, container)

	_, err := client.Login(t.Context(), adminEmail, "wrong-password")
	requireAPIError(t, err, http.StatusUnauthorized, parleysdk.ErrorCodeAuthRequired)

	_, err = client.Login(t.Context(), "nobody@parley.test", adminPassword)
	requireAPIError(t, err, http.StatusUnauthorized, parleysdk.ErrorCodeAuthRequired)

	t.Logf("Invalid credentials correctly rejected with 401")
}

// TestRefreshWithAccessToken verifies the refresh endpoint rejects access
// tokens. The two kinds are not interchangeable.
func TestRefreshWithAccessToken(t *testing.T) {
	container, baseURL, cleanup := setupParleyContainer(t)
	defer cleanup()

	client := parleysdk.NewSDKClient(baseURL)
	createAdminUser(t, container)

	session := loginAdmin(t, client)

	_, err := client.RefreshToken(t.Context(), session.AccessToken())
	requireAPIError(t, err, http.StatusUnauthorized, parleysdk.ErrorCodeInvalidToken)

	t.Logf("Access token correctly rejected by the refresh endpoint")
}

// TestRefreshWithGarbageToken verifies the refresh endpoint rejects strings
// that are not tokens at all.
func TestRefreshWithGarbageToken(t *testing.T) {
	container, baseURL, cleanup := setupParleyContainer(t)
	defer cleanup()

	client := parleysdk.NewSDKClient(baseURL)
	createAdminUser(t, container)

	_, err := client.RefreshToken(t.Context(), "not-a-token")
	requireAPIError(t, err, http.StatusUnauthorized, parleysdk.ErrorCodeInvalidToken)

	t.Logf("Garbage refresh token correctly rejected")
}
