package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/service"
	"github.com/parleyhq/parley/internal/store"
	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/slogx"
	"github.com/parleyhq/parley/pkg/tokenx"

	_ "github.com/parleyhq/parley/api/parley" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *tokenx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService    *service.AuthService
	UserService    *service.UserService
	APIKeyService  *service.APIKeyService
	ContactService *service.ContactService
	MessageService *service.MessageService
}

func NewRouter(
	codec *tokenx.Codec,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain. The dashboard is a browser app, so CORS
	// must admit both credential headers.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
			ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}

	return r
}

func (rt *Router) ApplyRoutes() {
	rt.registerAuth()
	rt.registerAPIKeys()
	rt.registerContacts()
	rt.registerMessages()
	rt.registerAdmin()
	rt.registerSystem()

	rt.Mux.Handle("/v1/docs/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Parley API
//	@version		0.1.0
//	@description	Multi-tenant messaging/CRM backend. Authenticate with a short-lived
//	@description	bearer token (login session) or a long-lived API key; API keys carry
//	@description	an explicit permission set fixed at creation.
//
//	@contact.name				Parley Team
//	@contact.url				https://github.com/parleyhq/parley
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session access token. Format: "Bearer {token}".
//
//	@securityDefinitions.apikey	APIKeyAuth
//	@in							header
//	@name						X-API-Key
//	@description				Long-lived API key. Checked before the Authorization header.
func (rt *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(rt.Mux, rt.middlewares...).ServeHTTP(w, req)
}

func (rt *Router) registerAuth() {
	h := &AuthHandler{AuthService: rt.AuthService}

	// Credential endpoints get the strict per-IP limit to slow down
	// password and refresh-token guessing.
	rt.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	rt.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Identity echo accepts either credential scheme.
	rt.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			rt.authenticate,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (rt *Router) registerAPIKeys() {
	h := &APIKeysHandler{APIKeyService: rt.APIKeyService}

	// Key management is session-only: a stolen key must not be able to
	// mint further keys or revoke its siblings.
	rt.Mux.Handle("POST /v1/apikeys",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			rt.authenticate,
			RequireSession(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	rt.Mux.Handle("GET /v1/apikeys",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			rt.authenticate,
			RequireSession(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	rt.Mux.Handle("DELETE /v1/apikeys/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRevoke),
			rt.authenticate,
			RequireSession(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (rt *Router) registerContacts() {
	h := &ContactsHandler{ContactService: rt.ContactService}

	rt.Mux.Handle("GET /v1/contacts",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			rt.authenticate,
			RequirePermission(domain.PermReadContacts),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	rt.Mux.Handle("POST /v1/contacts",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			rt.authenticate,
			RequirePermission(domain.PermWriteContacts),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (rt *Router) registerMessages() {
	h := &MessagesHandler{MessageService: rt.MessageService}

	rt.Mux.Handle("GET /v1/messages",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			rt.authenticate,
			RequirePermission(domain.PermReadMessages),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	rt.Mux.Handle("POST /v1/messages",
		httpx.Chain(http.HandlerFunc(h.HandleSend),
			rt.authenticate,
			RequirePermission(domain.PermSendMessage),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (rt *Router) registerAdmin() {
	h := &AdminUsersHandler{UserService: rt.UserService}

	rt.Mux.Handle("GET /v1/admin/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			rt.authenticate,
			RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	rt.Mux.Handle("POST /v1/admin/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			rt.authenticate,
			RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (rt *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	rt.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(rt.startTime, rt.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	rt.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(rt.startTime, rt.buildVersion, rt.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
