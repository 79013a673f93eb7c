package edgesaved

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"

	"github.com/dmitrymomot/edgesaved/internal"
	"github.com/dmitrymomot/edgesaved/internal/handlers"
	"github.com/dmitrymomot/edgesaved/middlewares"
	"github.com/dmitrymomot/edgesaved/pkg/bookmark"
	"github.com/dmitrymomot/edgesaved/pkg/catalog"
	"github.com/dmitrymomot/edgesaved/pkg/cookie"
	"github.com/dmitrymomot/edgesaved/pkg/logger"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor
)

// WithCustomLogger replaces the logger built from Config.Log.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithHandlers registers additional route handlers.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// Health check names reported by the readiness probe.
const (
	CheckCatalog = "catalog"
	CheckSecret  = "secret"
)

// New builds the bookmark application from cfg.
// Extra options are applied after the defaults, so they can add handlers or
// replace the logger.
//
// A missing secret does not fail construction: bookmark routes answer 500
// and the readiness probe reports the problem until the process is restarted
// with APP_SECRET set.
func New(cfg Config, opts ...Option) (*App, error) {
	app, _, err := build(cfg, opts...)
	return app, err
}

// Run builds the app from cfg and serves until ctx is done or the process
// receives SIGINT or SIGTERM. ready, if set, is called with the listening address.
func Run(ctx context.Context, cfg Config, ready func(net.Addr), opts ...Option) error {
	app, cat, err := build(cfg, opts...)
	if err != nil {
		return err
	}
	defer logger.Flush()

	log := app.Logger()
	if err := cfg.Validate(); err != nil {
		log.Error("configuration is incomplete", slog.Any("error", err))
	}

	runOpts := []RunOption{
		internal.WithContext(ctx),
		internal.ShutdownTimeout(cfg.ShutdownTimeout),
		internal.StartupHook(func(context.Context) error {
			log.Info("catalogue loaded", slog.Int("articles", cat.Len()))
			return nil
		}),
	}
	if ready != nil {
		runOpts = append(runOpts, internal.OnReady(ready))
	}

	return app.Run(cfg.Address, runOpts...)
}

func build(cfg Config, opts ...Option) (*App, *catalog.Catalog, error) {
	cat, err := loadCatalog(cfg.CatalogDir)
	if err != nil {
		return nil, nil, err
	}

	base := []Option{
		internal.WithLogger("edgesaved", cfg.Log, middlewares.RequestIDExtractor()),
		internal.WithCookieOptions(cookie.WithMaxAge(cfg.cookieMaxAge())),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger("/health/live", "/health/ready"),
			middlewares.Recover(),
		),
		internal.WithStaticFiles("/static/", Assets, AssetsDir),
		internal.WithHealthChecks(
			internal.WithReadinessCheck(CheckCatalog, cat.Healthcheck()),
			internal.WithReadinessCheck(CheckSecret, secretCheck(cfg.Secret)),
		),
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		internal.WithHandlers(handlers.NewBookmarkHandler(cat, bookmark.New(), cfg.Secret)),
	}

	return internal.New(append(base, opts...)...), cat, nil
}

// loadCatalog reads articles from dir, or from the embedded content when dir is empty.
func loadCatalog(dir string) (*catalog.Catalog, error) {
	var (
		fsys fs.FS = Content
		path       = ArticlesDir
	)
	if dir != "" {
		fsys, path = os.DirFS(dir), "."
	}

	cat, err := catalog.Load(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}
	return cat, nil
}

// secretCheck fails readiness while no signing secret is configured.
func secretCheck(secret string) func(context.Context) error {
	return func(context.Context) error {
		if secret == "" {
			return bookmark.ErrNoSecret
		}
		return nil
	}
}
