// Package server wires the landing handlers into a chi router and runs the
// HTTP server.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/landing-web/internal/config"
	"finitefield.org/landing-web/internal/handlers"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/middleware"
	"finitefield.org/landing-web/internal/observability"
	"finitefield.org/landing-web/internal/static"
	"finitefield.org/landing-web/internal/status"
)

// Options holds the dependencies of the router.
type Options struct {
	Config   config.Config
	Pages    *handlers.Pages
	Chrome   *i18n.Bundle
	Logger   *zap.Logger
	LoadedAt time.Time
}

// NewRouter builds the middleware stack and mounts every route.
func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := opts.Config

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(observability.InjectLogger(logger))
	r.Use(observability.Recovery(logger))
	r.Use(middleware.HTMX)
	r.Use(handlers.SiteFromHost(cfg.Sites))
	r.Use(middleware.Language(opts.Chrome, cfg.Production()))
	r.Use(middleware.VaryLocale)
	r.Use(middleware.CSRF(cfg.Production()))
	r.Use(observability.RequestLogger)
	r.Use(chimw.Compress(5))

	r.Get("/healthz", handlers.Healthz)
	r.Get("/robots.txt", opts.Pages.Robots)
	r.Get("/status.json", status.Handler(opts.Pages.Store(), opts.Chrome, opts.LoadedAt))
	r.Handle(static.Path+"/*", middleware.AssetsWithCache(static.FS(), static.Path, cfg.Dev))

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(30 * time.Second))
		r.Get("/", opts.Pages.Home)
		r.Get("/sites/{site}", opts.Pages.Site)
		r.Get("/fragments/modal/{name}", opts.Pages.ModalFragment)
		r.Post("/lang/toggle", opts.Pages.Toggle)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, r, http.StatusNotFound, "")
	})
	return r
}

// New constructs the HTTP server with the configured timeouts.
func New(opts Options) *http.Server {
	s := opts.Config.Server
	return &http.Server{
		Addr:              s.Addr(),
		Handler:           NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.ReadTimeout,
		WriteTimeout:      s.WriteTimeout,
		IdleTimeout:       s.IdleTimeout,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// shutdownTimeout.
func Run(ctx context.Context, srv *http.Server, logger *zap.Logger, shutdownTimeout time.Duration) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("landing web listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received; draining requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
