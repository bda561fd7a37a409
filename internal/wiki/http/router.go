package http

import (
	"log/slog"
	"net/http"

	"github.com/auswiki/auswiki/internal/wiki/service"
	"github.com/auswiki/auswiki/internal/wiki/store"
	"github.com/auswiki/auswiki/pkg/httpx"
	"github.com/auswiki/auswiki/pkg/jwtx"
	"github.com/auswiki/auswiki/pkg/slogx"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	Logger         *slog.Logger
	Store          store.Store
	Auth           *service.AuthService
	AUs            *service.AUService
	Verifier       jwtx.Verifier
	AllowedOrigins []string
}

// Router is the top-level http.Handler for the service.
type Router struct {
	handler http.Handler
}

// NewRouter wires up all routes and middleware.
func NewRouter(cfg RouterConfig) *Router {
	mux := http.NewServeMux()

	authH := &AuthHandler{Auth: cfg.Auth}
	auH := &AUHandler{AUs: cfg.AUs}

	guard := httpx.AuthnMiddleware(cfg.Verifier)

	// Credential endpoints are strictly limited by client IP to slow down
	// brute forcing.
	mux.Handle("POST /auth/register", httpx.Chain(
		http.HandlerFunc(authH.Register),
		httpx.RateLimitByIP(httpx.StrictLimit),
	))
	mux.Handle("POST /auth/login", httpx.Chain(
		http.HandlerFunc(authH.Login),
		httpx.RateLimitByIP(httpx.StrictLimit),
	))

	mux.Handle("GET /aus", httpx.Chain(
		http.HandlerFunc(auH.List),
		httpx.RateLimitByIP(httpx.LenientLimit),
	))
	mux.Handle("POST /aus", httpx.Chain(
		http.HandlerFunc(auH.Create),
		guard,
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))
	mux.Handle("DELETE /aus/{id}", httpx.Chain(
		http.HandlerFunc(auH.Delete),
		guard,
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))

	mux.HandleFunc("GET /livez", handleLivez)
	mux.Handle("GET /readyz", handleReadyz(cfg.Store))
	mux.HandleFunc("GET /{$}", handleBanner)

	handler := httpx.Chain(mux,
		slogx.HTTPMiddleware(cfg.Logger),
		httpx.SecurityHeaders(),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
	)

	return &Router{handler: handler}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.handler.ServeHTTP(w, r)
}

func handleBanner(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"service": "auwiki",
		"message": "AU wiki API. See /aus for the public record list.",
	})
}

func handleLivez(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleReadyz(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, codeInternal, "database unavailable")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
