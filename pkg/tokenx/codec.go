package tokenx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers every verification failure that is not a clean
	// expiry: bad signatures, malformed tokens, wrong signing algorithm,
	// wrong issuer, wrong token kind. Callers get no further detail so a
	// probing client can't tell which check tripped.
	ErrInvalidToken = errors.New("tokenx: invalid token")

	// ErrExpiredToken means the token was correctly signed but its expiry
	// has passed. Only this case is distinguished, so clients know a
	// refresh is worth attempting.
	ErrExpiredToken = errors.New("tokenx: token expired")
)

// Config carries everything a Codec needs. Zero-value TTLs fall back to the
// package defaults and a nil Clock falls back to time.Now.
type Config struct {
	// Secret is the HMAC signing secret shared by all tokens.
	Secret []byte

	// Issuer is stamped into the "iss" claim and enforced on verification.
	// Empty means no issuer check.
	Issuer string

	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Clock overrides the time source. Tests use this to walk tokens
	// across their expiry without sleeping.
	Clock func() time.Time
}

// Codec signs and verifies Parley tokens with a single symmetric secret.
type Codec struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewCodec builds a Codec from cfg, applying defaults for unset fields.
func NewCodec(cfg Config) *Codec {
	c := &Codec{
		secret:     cfg.Secret,
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        cfg.Clock,
	}
	if c.accessTTL <= 0 {
		c.accessTTL = DefaultAccessTTL
	}
	if c.refreshTTL <= 0 {
		c.refreshTTL = DefaultRefreshTTL
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Issue signs a token of the given kind with the given lifetime. A negative
// ttl produces an already-expired token, which is occasionally useful in
// tests and harmless otherwise. Returns the compact token and its expiry.
func (c *Codec) Issue(userID, email, role string, kind Kind, ttl time.Duration) (string, time.Time, error) {
	now := c.now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
		Kind:   kind,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("tokenx: sign token: %w", err)
	}

	return token, expiresAt, nil
}

// IssuePair issues a matching access and refresh token for the user. The
// pair's ExpiresAt is the access token's expiry.
func (c *Codec) IssuePair(userID, email, role string) (TokenPair, error) {
	access, accessExp, err := c.Issue(userID, email, role, KindAccess, c.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, _, err := c.Issue(userID, email, role, KindRefresh, c.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    TokenTypeBearer,
		ExpiresAt:    accessExp,
	}, nil
}

// Verify parses and validates a token of either kind and returns its claims.
// Errors collapse to ErrInvalidToken except for a correctly-signed token
// whose expiry has passed, which reports ErrExpiredToken.
func (c *Codec) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		// The declared algorithm must be HMAC before the secret is handed
		// over. A token stamped RS256 or "none" never touches the key.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("tokenx: unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		// jwt/v5 checks the signature before the claims, so ErrTokenExpired
		// only surfaces for tokens that verified cryptographically.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if c.issuer != "" && claims.Issuer != c.issuer {
		return Claims{}, ErrInvalidToken
	}

	return *claims, nil
}

// VerifyAccess verifies a token and requires it to be an access token.
// Presenting a refresh token here reports ErrInvalidToken, same as any
// other invalid token.
func (c *Codec) VerifyAccess(tokenStr string) (Claims, error) {
	return c.verifyKind(tokenStr, KindAccess)
}

// VerifyRefresh verifies a token and requires it to be a refresh token.
func (c *Codec) VerifyRefresh(tokenStr string) (Claims, error) {
	return c.verifyKind(tokenStr, KindRefresh)
}

func (c *Codec) verifyKind(tokenStr string, kind Kind) (Claims, error) {
	claims, err := c.Verify(tokenStr)
	if err != nil {
		return Claims{}, err
	}

	if claims.Kind != kind {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}

// Refresh verifies a refresh token and issues a brand new pair for the same
// user. The presented refresh token stays valid until its own expiry; there
// is no server-side revocation list to rotate it out of.
func (c *Codec) Refresh(refreshToken string) (TokenPair, error) {
	claims, err := c.VerifyRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}

	return c.IssuePair(claims.UserID, claims.Email, claims.Role)
}
