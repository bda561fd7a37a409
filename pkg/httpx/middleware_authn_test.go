package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auswiki/auswiki/pkg/httpx"
	"github.com/auswiki/auswiki/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("authn-middleware-test-secret")

func newGuardedHandler(t *testing.T) (http.Handler, *jwtx.HS256Signer) {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "")
	require.NoError(t, err)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := httpx.IdentityFromContext(r.Context())
		require.True(t, ok, "identity should be attached after authentication")
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"user_id": ident.ID, "username": ident.Username})
	})

	return httpx.Chain(inner, httpx.AuthnMiddleware(verifier)), signer
}

func TestAuthnMiddleware_NoToken(t *testing.T) {
	handler, _ := newGuardedHandler(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwdw=="},
		{"bare token without scheme", "not-a-bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code, "absent token is 401, never 403")
			require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
		})
	}
}

func TestAuthnMiddleware_BadToken(t *testing.T) {
	handler, signer := newGuardedHandler(t)

	expired, err := signer.Sign(jwtx.NewSessionClaims(
		"01ARZ3NDEKTSV4RRFFQ69G5FAV", "alice",
		time.Hour, "", time.Now().Add(-2*time.Hour),
	))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "Bearer garbage"},
		{"expired", "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.token)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusForbidden, rec.Code, "present-but-invalid token is 403, never 401")
		})
	}
}

func TestAuthnMiddleware_ValidToken(t *testing.T) {
	handler, signer := newGuardedHandler(t)

	token, err := signer.Sign(jwtx.NewSessionClaims(
		"01ARZ3NDEKTSV4RRFFQ69G5FAV", "alice",
		jwtx.DefaultSessionTTL, "", time.Now(),
	))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.Contains(t, rec.Body.String(), "alice")
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		mark("first"), mark("second"),
	)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second"}, order)
}

func TestCORSMiddleware(t *testing.T) {
	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }),
		httpx.CORSMiddleware([]string{"https://wiki.example.org"}),
	)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/aus", nil)
		req.Header.Set("Origin", "https://wiki.example.org")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, "https://wiki.example.org", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/aus", nil)
		req.Header.Set("Origin", "https://evil.example.org")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/aus", nil)
		req.Header.Set("Origin", "https://wiki.example.org")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})
}
