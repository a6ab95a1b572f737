// Package tokenx issues and verifies the HS256 session tokens used by the
// Parley API. Access and refresh tokens share one claim shape and one signing
// secret; the "type" claim is the only thing telling them apart.
package tokenx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTLs. Short access tokens bound the damage window of a
// leaked token; refresh tokens trade that off for login convenience.
const (
	// DefaultAccessTTL is the default lifetime for access tokens.
	DefaultAccessTTL = 15 * time.Minute

	// DefaultRefreshTTL is the default lifetime for refresh tokens.
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenTypeBearer is the scheme label clients present tokens under.
const TokenTypeBearer = "Bearer"

// Kind distinguishes access tokens from refresh tokens. It is carried in
// the "type" claim and checked on every kind-specific verification.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims is the claim set embedded in every Parley token. Subject always
// mirrors UserID so standard JWT tooling sees a sensible "sub".
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the authenticated user's ID.
	UserID string `json:"user_id"`

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`

	// Role of the authenticated user, e.g. "admin" or "member".
	Role string `json:"role,omitempty"`

	// Kind marks the token as an access or refresh token.
	Kind Kind `json:"type"`
}

// TokenPair bundles a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string

	// TokenType is the presentation scheme, always "Bearer".
	TokenType string

	// ExpiresAt is when the access token expires. The refresh token's own
	// expiry is carried inside the refresh token itself.
	ExpiresAt time.Time
}
