package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated principal's user ID. The
// authentication middleware sets it so generic plumbing (request logging,
// per-user rate limits) can key on the user without knowing how the request
// was authenticated.
const CtxKeyUserID ctxKey = "user_id"

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

// UserIDFromContext returns the authenticated user ID, or "" if the request
// is unauthenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
