package middlewares

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/edgesaved/internal"
	"github.com/dmitrymomot/edgesaved/pkg/logger"
)

type requestIDKey struct{}

// DefaultRequestIDHeaders are checked in order for an upstream request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// maxRequestIDLength bounds IDs accepted from clients.
const maxRequestIDLength = 128

type requestIDConfig struct {
	generate       func() string
	responseHeader string
	headers        []string
}

// RequestIDOption configures the RequestID middleware.
type RequestIDOption func(*requestIDConfig)

// WithRequestIDHeaders replaces the headers searched for an upstream ID.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.headers = headers
	}
}

// WithRequestIDGenerator replaces NewRequestID. A nil generator is ignored.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		if gen != nil {
			cfg.generate = gen
		}
	}
}

// WithRequestIDResponseHeader sets the header echoing the ID. Empty disables the echo.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.responseHeader = header
	}
}

// NewRequestID returns a time-ordered UUIDv7 string.
func NewRequestID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// RequestID tags every request with an ID, stored in the request context and
// echoed in X-Request-ID. IDs longer than 128 bytes from clients are replaced.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := requestIDConfig{
		generate:       NewRequestID,
		responseHeader: "X-Request-ID",
		headers:        DefaultRequestIDHeaders,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id := cfg.incoming(c)
			if id == "" {
				id = cfg.generate()
			}

			c.Set(requestIDKey{}, id)
			if cfg.responseHeader != "" {
				c.SetHeader(cfg.responseHeader, id)
			}
			return next(c)
		}
	}
}

func (cfg *requestIDConfig) incoming(c internal.Context) string {
	for _, h := range cfg.headers {
		if v := c.Header(h); v != "" && len(v) <= maxRequestIDLength {
			return v
		}
	}
	return ""
}

// GetRequestID returns the current request ID, or "" outside RequestID.
func GetRequestID(c internal.Context) string {
	id, _ := c.Get(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds request_id to log records written with the request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, _ := ctx.Value(requestIDKey{}).(string)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}
