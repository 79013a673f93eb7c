// Package middlewares provides HTTP middleware for edgesaved applications.
//
// # Request ID
//
// RequestID assigns a UUIDv7 to each request, or reuses one from the
// X-Request-ID / X-Correlation-ID headers. Pair it with RequestIDExtractor
// so every log line carries request_id:
//
//	app := internal.New(
//	    internal.WithLogger("edgesaved", cfg.Log, middlewares.RequestIDExtractor()),
//	    internal.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover converts panics into *PanicError values handed to the app's
// ErrorHandler, so a panicking handler still gets a rendered 500 page.
//
// # Request logging
//
// RequestLogger writes one record per request with method, path, status,
// size and duration. Pass paths such as health probes to skip them.
//
// # Order
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.RequestLogger("/health", "/ready"),
//	    middlewares.Recover(),
//	)
//
// RequestID runs first so the logger and the recover handler see the ID.
package middlewares
