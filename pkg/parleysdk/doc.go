/*
Package parleysdk provides a client SDK for the Parley messaging API.

# Overview

The SDK wraps Parley's HTTP API behind typed Go methods. It supports both of
Parley's credential types: short-lived bearer tokens for interactive sessions
and long-lived API keys for integrations.

# SDKClient, Session and KeySession

The package is organized around three types:

  - SDKClient: unauthenticated operations and the entry point for authentication
  - Session: bearer-token operations with automatic token refresh
  - KeySession: operations authenticated with an X-API-Key header

Create an SDKClient to reach public endpoints and log in:

	client := parleysdk.NewSDKClient("https://api.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Authenticate to create a session
	session, err := client.Login(ctx, "alice@example.com", "password")

Use a Session for token-authenticated operations. Sessions refresh their
access token automatically when it expires:

	me, err := session.Me(ctx)

	created, err := session.CreateAPIKey(ctx, parleysdk.CreateAPIKeyRequest{
		Name:        "crm-sync",
		Permissions: []string{"read_contacts", "write_contacts"},
	})

	// created.Key is the full key, shown exactly once

Use a KeySession when acting as an integration:

	keys := client.WithAPIKey(created.Key)
	contacts, err := keys.ListContacts(ctx)

# Automatic Token Refresh

Session methods call getValidToken internally, which checks the access token
expiry (with a 30 second buffer) and exchanges the refresh token for a new
pair when needed. Callers never refresh manually.

# Error Handling

Failed requests return *APIError carrying the HTTP status and Parley's
machine-readable error code:

	_, err := session.Me(ctx)
	var apiErr *parleysdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == parleysdk.ErrorCodeExpiredToken {
		// re-authenticate
	}

# Thread Safety

Sessions are safe for concurrent use. Token state is guarded by a
read/write lock, so multiple goroutines can share one Session.
*/
package parleysdk
