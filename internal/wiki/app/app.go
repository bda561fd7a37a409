package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	wikihttp "github.com/auswiki/auswiki/internal/wiki/http"
	"github.com/auswiki/auswiki/internal/wiki/service"
	"github.com/auswiki/auswiki/internal/wiki/store"
	"github.com/auswiki/auswiki/internal/wiki/store/drivers/sqlite"
	"github.com/auswiki/auswiki/pkg/cryptox"
	"github.com/auswiki/auswiki/pkg/jwtx"
	"github.com/auswiki/auswiki/pkg/slogx"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Application owns the long-lived pieces and their shutdown order.
type Application struct {
	cfg    Config
	logger *slog.Logger
	store  store.Store
	server *http.Server
}

// New wires the whole service together from cfg.
func New(cfg Config) (*Application, error) {
	logger := slogx.New(slogx.Config{
		Service: "auwiki",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	cryptox.SetPepperPath(cfg.PepperFile)

	st, err := sqlite.NewStore("file:" + cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	signer, err := jwtx.NewSignerHS256(cfg.JWTSecret)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("build signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256(cfg.JWTSecret, cfg.Issuer)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("build verifier: %w", err)
	}

	router := wikihttp.NewRouter(wikihttp.RouterConfig{
		Logger: logger,
		Store:  st,
		Auth: &service.AuthService{
			Store:    st,
			Signer:   signer,
			Issuer:   cfg.Issuer,
			TokenTTL: cfg.TokenTTL,
		},
		AUs:            &service.AUService{Store: st},
		Verifier:       verifier,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	return &Application{
		cfg:    cfg,
		logger: logger,
		store:  st,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives, then
// shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening",
			slog.String("addr", a.server.Addr),
			slog.String("version", Version),
		)
		if err := a.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		_ = a.store.Close()
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGrace)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	if cerr := a.store.Close(); err == nil {
		err = cerr
	}
	return err
}
