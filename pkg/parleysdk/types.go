package parleysdk

import "time"

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the Parley error envelope. It is used internally for
// parsing HTTP error responses; client code should use APIError instead.
type ErrorResponse struct {
	// Code is the machine-readable error code (e.g. "INVALID_TOKEN")
	Code string `json:"code"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest carries the credentials for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries the refresh token for POST /v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse is returned by the login and refresh endpoints.
type TokenResponse struct {
	// AccessToken is the JWT used to authenticate API requests
	AccessToken string `json:"access_token"`

	// RefreshToken is the JWT used to obtain new token pairs
	RefreshToken string `json:"refresh_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresAt is when the access token expires (RFC3339)
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse describes the identity behind the presented credential.
type MeResponse struct {
	// UserID is the user the credential acts as. For API keys this is the
	// key owner's user ID.
	UserID string `json:"user_id"`

	// Email of the user. Empty for API-key callers.
	Email string `json:"email,omitempty"`

	// Role of the user. Empty for API-key callers.
	Role string `json:"role,omitempty"`

	// AuthMethod is "session" or "api_key".
	AuthMethod string `json:"auth_method"`
}

// ============================================================================
// API Key Types
// ============================================================================

// CreateAPIKeyRequest creates a new API key owned by the calling user.
type CreateAPIKeyRequest struct {
	// Name is a human-readable label for the key (e.g. "zapier-sync")
	Name string `json:"name"`

	// Permissions grants the key a subset of the permission vocabulary,
	// e.g. ["read_contacts", "send_message"]. An empty list grants nothing.
	Permissions []string `json:"permissions"`

	// ExpiresAt optionally sets an expiry. Omitted means the key never
	// expires on its own.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CreateAPIKeyResponse contains the full key material, returned exactly once.
type CreateAPIKeyResponse struct {
	// Key is the full raw API key. It is never shown again; only a hash
	// is stored server-side.
	Key string `json:"key"`

	// APIKey is the stored metadata for the new key.
	APIKey APIKeyInfo `json:"api_key"`
}

// APIKeyInfo is the stored metadata of an API key. The raw key itself is
// never part of this type.
type APIKeyInfo struct {
	ID string `json:"id"`

	Name string `json:"name"`

	// KeyPrefix is the first few characters of the raw key, kept for
	// display so users can tell their keys apart.
	KeyPrefix string `json:"key_prefix"`

	Permissions []string `json:"permissions"`

	CreatedAt time.Time `json:"created_at"`

	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// RevokedAt is set when the key is revoked and never cleared.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`

	// LastUsedAt tracks the most recent successful validation. Updated
	// best-effort, so it can lag slightly behind reality.
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// ListAPIKeysResponse contains all of the calling user's API keys,
// including revoked and expired ones.
type ListAPIKeysResponse struct {
	APIKeys []APIKeyInfo `json:"api_keys"`
}

// ============================================================================
// Contact Types
// ============================================================================

// CreateContactRequest creates a contact in the calling user's workspace.
type CreateContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Contact is a CRM contact. Contacts are scoped to their owning user.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListContactsResponse contains the calling user's contacts.
type ListContactsResponse struct {
	Contacts []Contact `json:"contacts"`
}

// ============================================================================
// Message Types
// ============================================================================

// SendMessageRequest sends an outbound message to a contact.
type SendMessageRequest struct {
	ContactID string `json:"contact_id"`
	Body      string `json:"body"`
}

// Message is a single message in a contact's conversation history.
type Message struct {
	ID        string `json:"id"`
	ContactID string `json:"contact_id"`

	// Direction is "outbound" for messages sent through the API and
	// "inbound" for messages received from the contact.
	Direction string `json:"direction"`

	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ListMessagesResponse contains the message history for one contact.
type ListMessagesResponse struct {
	Messages []Message `json:"messages"`
}

// ============================================================================
// Admin Types
// ============================================================================

// CreateUserRequest creates a new user. Admin only.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`

	// Role is "admin" or "member".
	Role string `json:"role"`
}

// User is a Parley user account. Password material is never included.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ListUsersResponse contains all user accounts. Admin only.
type ListUsersResponse struct {
	Users []User `json:"users"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is the response for the /livez and /readyz endpoints.
// Readiness includes the per-dependency Checks field.
type HealthResponse struct {
	// Status indicates the overall health status (e.g. "ok")
	Status string `json:"status"`

	// Uptime is the service uptime as a duration string (e.g. "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks maps dependency names to their status (readyz only)
	Checks map[string]string `json:"checks,omitempty"`
}
