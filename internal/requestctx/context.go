package requestctx

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerContextKey contextKey = "finitefield.org/landing-web/internal/requestctx/logger"
	siteContextKey   contextKey = "finitefield.org/landing-web/internal/requestctx/site"
)

var noopLogger = zap.NewNop()

// WithLogger stores the logger in context for downstream consumers.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = noopLogger
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}

// Logger retrieves the zap logger from context or returns a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return noopLogger
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return noopLogger
}

// NoopLogger exposes the shared noop logger instance used across the package.
func NoopLogger() *zap.Logger { return noopLogger }

// WithSite records which landing site is serving the request.
func WithSite(ctx context.Context, site string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, siteContextKey, site)
}

// Site returns the site id stored by WithSite.
func Site(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	site, ok := ctx.Value(siteContextKey).(string)
	return site, ok && site != ""
}
