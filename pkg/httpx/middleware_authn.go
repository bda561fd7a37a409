package httpx

import (
	"net/http"
	"strings"

	"github.com/auswiki/auswiki/pkg/jwtx"
	"github.com/auswiki/auswiki/pkg/slogx"
)

// AuthnMiddleware guards protected routes with bearer-token authentication.
//
// The two failure classes are deliberately kept apart: no token at all is 401,
// while a token that is present but malformed or expired is 403. Handlers and
// clients rely on that distinction, do not collapse it.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeBearerError(w, http.StatusForbidden, "token invalid or expired")
				return
			}

			ident := Identity{ID: claims.Subject, Username: claims.Username}
			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(ctx, ident)))
		})
	}
}

// RFC 6750-style error response for bearer auth.
func writeBearerError(w http.ResponseWriter, code int, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, code, map[string]string{
		"error":   "invalid_token",
		"message": desc,
	})
}
