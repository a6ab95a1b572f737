package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/service"
	"github.com/parleyhq/parley/internal/store"
	"github.com/parleyhq/parley/internal/store/drivers/sqlite"
	"github.com/parleyhq/parley/pkg/cryptox"
	"github.com/parleyhq/parley/pkg/parleysdk"
	"github.com/parleyhq/parley/pkg/tokenx"
)

func TestMain(m *testing.M) {
	// Set up a temporary pepper file for testing
	tmpDir := os.TempDir()
	pepperPath := filepath.Join(tmpDir, "parley-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// routerFixture wires a Router against an in-memory store, the same way
// app.Application does in production.
type routerFixture struct {
	rt    *Router
	st    store.Store
	codec *tokenx.Codec
}

func newTestRouter(t *testing.T) *routerFixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec := tokenx.NewCodec(tokenx.Config{
		Secret: []byte("router-test-secret"),
		Issuer: "parley-test",
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rt := NewRouter(codec, "test", st, logger, []string{"*"})
	rt.AuthService = &service.AuthService{Store: st, Codec: codec}
	rt.UserService = &service.UserService{Store: st}
	rt.APIKeyService = &service.APIKeyService{Store: st}
	rt.ContactService = &service.ContactService{Store: st}
	rt.MessageService = &service.MessageService{Store: st}
	rt.ApplyRoutes()

	return &routerFixture{rt: rt, st: st, codec: codec}
}

// seedUser creates a user directly through the service layer.
func (fx *routerFixture) seedUser(t *testing.T, email, password, role string) domain.User {
	t.Helper()

	u, err := fx.rt.UserService.CreateUser(t.Context(), email, "Test User", password, role)
	require.NoError(t, err)
	return u
}

// accessToken issues a valid access token for the user.
func (fx *routerFixture) accessToken(t *testing.T, u domain.User) string {
	t.Helper()

	pair, err := fx.codec.IssuePair(u.ID, u.Email, u.Role)
	require.NoError(t, err)
	return pair.AccessToken
}

// seedAPIKey mints a key for the user with the given permissions and returns
// the raw key alongside its record.
func (fx *routerFixture) seedAPIKey(t *testing.T, ownerID string, perms ...string) (domain.APIKey, string) {
	t.Helper()

	key, raw, err := fx.rt.APIKeyService.CreateAPIKey(t.Context(), ownerID, "test-key", perms, nil)
	require.NoError(t, err)
	return key, raw
}

// do runs one request through the full router, global middleware included.
func (fx *routerFixture) do(t *testing.T, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	fx.rt.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func apiKey(raw string) map[string]string {
	return map[string]string{"X-API-Key": raw}
}

// decodeBody unmarshals a recorded JSON response into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// requireErrorCode asserts the response is the expected error envelope.
func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code)

	var resp parleysdk.ErrorResponse
	decodeBody(t, rec, &resp)
	require.Equal(t, code, resp.Code)
	require.NotEmpty(t, resp.Message)
}

func TestRouter(t *testing.T) {
	t.Run("unknown routes return 404", func(t *testing.T) {
		fx := newTestRouter(t)

		rec := fx.do(t, http.MethodGet, "/v1/nope", nil, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("login and me roundtrip through the full chain", func(t *testing.T) {
		fx := newTestRouter(t)
		user := fx.seedUser(t, "alice@example.com", "correct horse battery", domain.RoleMember)

		rec := fx.do(t, http.MethodPost, "/v1/auth/login", parleysdk.LoginRequest{
			Email:    "alice@example.com",
			Password: "correct horse battery",
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var tokens parleysdk.TokenResponse
		decodeBody(t, rec, &tokens)
		require.NotEmpty(t, tokens.AccessToken)
		require.NotEmpty(t, tokens.RefreshToken)
		require.Equal(t, "Bearer", tokens.TokenType)

		rec = fx.do(t, http.MethodGet, "/v1/auth/me", nil, bearer(tokens.AccessToken))
		require.Equal(t, http.StatusOK, rec.Code)

		var me parleysdk.MeResponse
		decodeBody(t, rec, &me)
		require.Equal(t, user.ID, me.UserID)
		require.Equal(t, "alice@example.com", me.Email)
		require.Equal(t, domain.RoleMember, me.Role)
		require.Equal(t, "session", me.AuthMethod)
	})

	t.Run("cors preflight is answered for allowed origins", func(t *testing.T) {
		fx := newTestRouter(t)

		req := httptest.NewRequest(http.MethodOptions, "/v1/contacts", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "X-API-Key")

		rec := httptest.NewRecorder()
		fx.rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
