package app

import (
	"net/http"

	"go.uber.org/zap"
)

const defaultRequestIDHeader = "X-Request-ID"

// Option configures an App.
type Option func(*config)

type config struct {
	logger          *zap.Logger
	middlewares     []func(http.Handler) http.Handler
	requestIDHeader string
	trustRequestID  bool
}

// WithLogger sets the logger used by the access log and recovery middleware.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMiddlewares appends middleware after the built-in ones.
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(cfg *config) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithRequestIDHeader overrides the header carrying the request ID
// (default: X-Request-ID). When trustIncoming is set, an ID supplied by the
// client is reused instead of generating a new one.
func WithRequestIDHeader(header string, trustIncoming bool) Option {
	return func(cfg *config) {
		if header != "" {
			cfg.requestIDHeader = header
		}
		cfg.trustRequestID = trustIncoming
	}
}
