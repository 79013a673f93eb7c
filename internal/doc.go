// Package internal provides the core HTTP types of edgesaved.
//
// Import "github.com/dmitrymomot/edgesaved" instead, which re-exports the
// public API.
//
// # Core Types
//
//   - App: HTTP routing on chi, middleware, health endpoints and graceful shutdown
//   - Context: request/response access, bookmark cookie helpers, rendering and logging
//   - Router: interface handlers use to declare routes
//   - Handler: types that declare routes on a router
//   - HandlerFunc: route handler returning an error
//   - Middleware: wraps handlers with cross-cutting concerns
//   - ErrorHandler: renders errors returned from handlers
//
// # Context as context.Context
//
// Context embeds context.Context. Deadline, Done, Err and Value delegate to
// the request context, so c can be passed wherever a context is expected.
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithHandlers(bookmarks),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("catalog", check)),
//	)
//
// Handlers receive dependencies through their constructors:
//
//	func (h *Bookmarks) Routes(r internal.Router) {
//	    r.GET("/", h.index)
//	    r.POST("/toggle", h.toggle)
//	}
//
// # Errors
//
// A handler error goes to the ErrorHandler unless the response has already
// started. Return an [HTTPError] to choose the status code:
//
//	return internal.ErrBadRequest("Invalid articleId.")
//
// # Cookies
//
// The bookmark cookie is appended, never overwritten, so several Set-Cookie
// headers can coexist:
//
//	token, ok := c.Cookie()
//	c.SetCookie(next)
//	c.DeleteCookie()
//	c.NoStore()
package internal
