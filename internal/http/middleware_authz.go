package http

import (
	"net/http"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/parleysdk"
)

// RequirePermission gates a route on an API key permission. Session callers
// pass unconditionally: a logged-in user already holds full account access,
// permissions only narrow what a key may do on the owner's behalf.
func RequirePermission(permission string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				parleysdk.ErrAuthRequired.WriteError(w)
				return
			}

			if identity.IsSession() {
				next.ServeHTTP(w, r)
				return
			}

			if identity.APIKey == nil {
				parleysdk.ErrAPIKeyRequired.WriteError(w)
				return
			}
			if !identity.APIKey.Permissions.Has(permission) {
				parleysdk.ErrPermissionDenied.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole gates a route on the caller's role. Only session identities
// carry a role, so API keys are rejected here no matter whose key they are.
func RequireRole(roles ...string) httpx.Middleware {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				parleysdk.ErrAuthRequired.WriteError(w)
				return
			}

			if identity.Role == "" {
				parleysdk.ErrForbidden.WriteError(w)
				return
			}
			if _, ok := allowed[identity.Role]; !ok {
				parleysdk.ErrForbidden.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession restricts a route to token-authenticated callers. Credential
// management lives behind this so a leaked API key can never mint or revoke
// keys.
func RequireSession() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				parleysdk.ErrAuthRequired.WriteError(w)
				return
			}

			if identity.Method != domain.AuthMethodSession {
				parleysdk.ErrSessionRequired.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
