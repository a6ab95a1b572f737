package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/service"
	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/parleysdk"
	"github.com/parleyhq/parley/pkg/slogx"
	"github.com/parleyhq/parley/pkg/tokenx"
)

const (
	headerAPIKey        = "X-API-Key"
	headerAuthorization = "Authorization"
	bearerScheme        = "Bearer "
)

// authDecision is the outcome of credential resolution: either an identity
// to attach to the request, or the wire error to reject it with. Exactly one
// of the two fields is set.
type authDecision struct {
	identity domain.Identity
	reject   *parleysdk.APIError
}

func allow(id domain.Identity) authDecision { return authDecision{identity: id} }

func deny(e *parleysdk.APIError) authDecision { return authDecision{reject: e} }

// authenticate resolves the request's credentials into an Identity before
// the handler runs. Exactly one scheme is consulted, in fixed precedence:
//
//  1. X-API-Key header, when present and non-empty
//  2. Authorization: Bearer access token
//  3. otherwise the request is rejected with AUTH_REQUIRED
//
// A request carrying both headers is authenticated by its API key alone; a
// rejected request never reaches the next handler.
func (rt *Router) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := rt.resolveCredentials(r)
		if decision.reject != nil {
			decision.reject.WriteError(w)
			return
		}

		ctx := withIdentity(r.Context(), decision.identity)
		ctx = httpx.WithUserID(ctx, decision.identity.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (rt *Router) resolveCredentials(r *http.Request) authDecision {
	if rawKey := r.Header.Get(headerAPIKey); rawKey != "" {
		return rt.resolveAPIKey(r.Context(), rawKey)
	}
	if token, ok := bearerToken(r); ok {
		return rt.resolveBearer(token)
	}
	return deny(parleysdk.ErrAuthRequired)
}

func (rt *Router) resolveAPIKey(ctx context.Context, rawKey string) authDecision {
	key, err := rt.APIKeyService.Validate(ctx, rawKey)
	switch {
	case err == nil:
		// Keys authenticate as their owner but carry no email or role;
		// role-gated routes stay closed to them.
		return allow(domain.Identity{
			UserID: key.OwnerUserID,
			Method: domain.AuthMethodAPIKey,
			APIKey: key,
		})
	case errors.Is(err, service.ErrKeyExpired):
		return deny(parleysdk.ErrExpiredAPIKey)
	case errors.Is(err, service.ErrKeyNotFound), errors.Is(err, service.ErrKeyRevoked):
		// Unknown and revoked keys are indistinguishable on the wire.
		return deny(parleysdk.ErrInvalidAPIKey)
	default:
		slogx.FromContext(ctx).Error("api key validation failed", "error", err)
		return deny(parleysdk.ErrServerError)
	}
}

func (rt *Router) resolveBearer(token string) authDecision {
	claims, err := rt.codec.VerifyAccess(token)
	switch {
	case err == nil:
		return allow(domain.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
			Method: domain.AuthMethodSession,
		})
	case errors.Is(err, tokenx.ErrExpiredToken):
		return deny(parleysdk.ErrExpiredToken)
	default:
		return deny(parleysdk.ErrInvalidToken)
	}
}

// bearerToken extracts the token from an Authorization header using the
// Bearer scheme. Other schemes read as "no bearer credential".
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get(headerAuthorization)
	if len(h) < len(bearerScheme) || !strings.EqualFold(h[:len(bearerScheme)], bearerScheme) {
		return "", false
	}
	return strings.TrimSpace(h[len(bearerScheme):]), true
}
