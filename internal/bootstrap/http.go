package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quickplate/ui-gate/config"
	httpx "github.com/quickplate/ui-gate/internal/http"
	"github.com/quickplate/ui-gate/internal/ports"
)

// HTTPServerConfig contains the dependencies for building the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Source   ports.CredentialSource
	Upstream *url.URL
	Logger   *slog.Logger
}

// BuildHTTPServer assembles the router, middleware chain, and server.
func BuildHTTPServer(cfg *HTTPServerConfig) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Table:        BuildRouteTable(cfg.Config.Gate),
		Source:       cfg.Source,
		Upstream:     cfg.Upstream,
		CookieDomain: cfg.Config.HTTP.CookieDomain,
		TokenCookie:  cfg.Config.Gate.TokenCookie,
		RoleCookie:   cfg.Config.Gate.RoleCookie,
		Logger:       logger,
	})

	// Order: Recover -> Logging -> RequestID -> Router
	h := httpx.RequestID()(router)
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)

	return &http.Server{
		Addr:         cfg.Config.HTTP.Addr,
		Handler:      h,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// RunHTTPServer serves until the context is canceled or the process receives
// SIGINT/SIGTERM, then drains in-flight requests before returning.
func RunHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
