// Package edgesaved serves an article list whose bookmarks live entirely in
// a signed cookie. There is no server-side storage: each request carries the
// bookmark set as an HMAC-SHA256 signed token in the edge_saved cookie.
//
// # Quick Start
//
//	cfg, err := edgesaved.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := edgesaved.Run(context.Background(), cfg, nil); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Config is read from the environment, after an optional .env file:
//
//	ADDRESS            listen address (default ":8080")
//	APP_SECRET         cookie signing secret (required for bookmark routes)
//	COOKIE_MAX_AGE     cookie lifetime in seconds (default 2592000)
//	SHUTDOWN_TIMEOUT   graceful shutdown limit (default 30s)
//	CATALOG_DIR        directory of markdown articles (default: embedded)
//	LOG_LEVEL          debug, info, warn or error (default info)
//	LOG_FORMAT         json or text (default json)
//	SENTRY_DSN         enables error reporting to Sentry
//
// # Routes
//
//	GET  /              article list, JSON with Accept: application/json or ?format=json
//	GET  /saved         bookmarked articles
//	POST /toggle        flip one article (articleId, returnTo), then 302
//	GET  /health/live   liveness probe
//	GET  /health/ready  readiness probe (checks: catalog, secret)
//	GET  /static/*      stylesheet
//
// The signed-cookie codec lives in pkg/bookmark and the cookie header
// handling in pkg/cookie; both are usable on their own.
package edgesaved
