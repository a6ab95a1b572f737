package domain

// AuthMethod records which credential type authenticated a request.
type AuthMethod string

const (
	AuthMethodSession AuthMethod = "session"
	AuthMethodAPIKey  AuthMethod = "api_key"
)

// Identity is the resolved caller attached to every authenticated request.
type Identity struct {
	// UserID is the acting user. For API keys this is the key owner, so
	// downstream code scopes data the same way for both credential types.
	UserID string

	// Email and Role are populated for token sessions only. API-key
	// identities leave them empty.
	Email string
	Role  string

	Method AuthMethod

	// APIKey is the validated key record for api_key identities, nil for
	// sessions.
	APIKey *APIKey
}

// IsSession reports whether the identity came from a bearer token.
func (i Identity) IsSession() bool {
	return i.Method == AuthMethodSession
}

// IsAPIKey reports whether the identity came from an API key.
func (i Identity) IsAPIKey() bool {
	return i.Method == AuthMethodAPIKey
}
