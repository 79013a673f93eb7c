package handlers

import (
	"net/http"

	"github.com/dmitrymomot/edgesaved/internal"
	"github.com/dmitrymomot/edgesaved/internal/views"
	"github.com/dmitrymomot/edgesaved/middlewares"
)

// errorResponse is the JSON shape of a failed request.
type errorResponse struct {
	Error     string `json:"error"`
	Status    int    `json:"status"`
	RequestID string `json:"requestId,omitempty"`
}

// ErrorHandler renders err as an error page, or as JSON for JSON clients.
// HTTPError messages are shown as is; anything else becomes a generic 500.
func ErrorHandler(c internal.Context, err error) error {
	code := http.StatusInternalServerError
	message := http.StatusText(code)

	if httpErr := internal.AsHTTPError(err); httpErr != nil {
		code = httpErr.Code
		message = httpErr.Message
	}

	switch {
	case middlewares.IsPanicError(err):
		// Recover has already logged the stack.
	case code >= http.StatusInternalServerError:
		c.LogError("request failed", "error", err, "status", code)
	default:
		c.LogDebug("request rejected", "error", err, "status", code)
	}

	if c.WantsJSON() {
		return c.JSON(code, errorResponse{
			Error:     message,
			Status:    code,
			RequestID: middlewares.GetRequestID(c),
		})
	}

	return c.Render(code, views.Layout(http.StatusText(code), views.ErrorPage(code, message)))
}

// NotFound answers unknown routes.
func NotFound(c internal.Context) error {
	return internal.ErrNotFound("Page not found.")
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(c internal.Context) error {
	return internal.ErrMethodNotAllowed("Method not allowed.")
}
