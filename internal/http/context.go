package http

import (
	"context"

	"github.com/parleyhq/parley/internal/domain"
)

type ctxKey int

const ctxKeyIdentity ctxKey = iota

func withIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the authenticated identity placed in the
// request context by the authentication middleware.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(domain.Identity)
	return id, ok
}
