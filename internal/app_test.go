package internal_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgesaved/internal"
	"github.com/dmitrymomot/edgesaved/pkg/cookie"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

type ctxKey struct{}

func serve(app *internal.App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestAppRouting(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/hello/{name}", func(c internal.Context) error {
			return c.String(http.StatusOK, "hello "+c.Param("name")+" "+c.QueryDefault("p", "!"))
		})
		r.POST("/form", func(c internal.Context) error {
			return c.String(http.StatusOK, c.Form("field"))
		})
		r.Route("/api", func(r internal.Router) {
			r.GET("/json", func(c internal.Context) error {
				return c.JSON(http.StatusCreated, map[string]bool{"ok": c.WantsJSON()})
			})
		})
	})))

	t.Run("path and query params", func(t *testing.T) {
		t.Parallel()

		rec := serve(app, httptest.NewRequest(http.MethodGet, "/hello/bob", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "hello bob !", rec.Body.String())
		require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("form body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/form?field=query", strings.NewReader("field=body"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := serve(app, req)
		require.Equal(t, "body", rec.Body.String())
	})

	t.Run("json with accept header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/json", nil)
		req.Header.Set("Accept", "application/json")
		rec := serve(app, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("json with format query", func(t *testing.T) {
		t.Parallel()

		rec := serve(app, httptest.NewRequest(http.MethodGet, "/api/json?format=json", nil))
		require.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("default not found", func(t *testing.T) {
		t.Parallel()

		rec := serve(app, httptest.NewRequest(http.MethodGet, "/missing", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAppErrors(t *testing.T) {
	t.Parallel()

	handlers := routes(func(r internal.Router) {
		r.GET("/bad", func(c internal.Context) error {
			return c.Error(http.StatusBadRequest, "Invalid articleId.")
		})
		r.GET("/plain", func(c internal.Context) error {
			return errors.New("boom")
		})
		r.GET("/late", func(c internal.Context) error {
			_ = c.String(http.StatusOK, "partial")
			return errors.New("too late")
		})
	})

	t.Run("default handler uses HTTPError code", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(handlers))

		rec := serve(app, httptest.NewRequest(http.MethodGet, "/bad", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = serve(app, httptest.NewRequest(http.MethodGet, "/plain", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()

		app := internal.New(
			internal.WithHandlers(handlers),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				code := http.StatusInternalServerError
				if he := internal.AsHTTPError(err); he != nil {
					code = he.Code
				}
				return c.String(code, "handled: "+err.Error())
			}),
		)

		rec := serve(app, httptest.NewRequest(http.MethodGet, "/bad", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "handled: Invalid articleId.", rec.Body.String())
	})

	t.Run("error after write keeps response", func(t *testing.T) {
		t.Parallel()

		app := internal.New(
			internal.WithHandlers(handlers),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				return c.String(http.StatusInternalServerError, "should not appear")
			}),
		)

		rec := serve(app, httptest.NewRequest(http.MethodGet, "/late", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "partial", rec.Body.String())
	})

	t.Run("custom not found and method not allowed", func(t *testing.T) {
		t.Parallel()

		app := internal.New(
			internal.WithHandlers(handlers),
			internal.WithNotFoundHandler(func(c internal.Context) error {
				return c.String(http.StatusNotFound, "nothing here")
			}),
			internal.WithMethodNotAllowedHandler(func(c internal.Context) error {
				return c.String(http.StatusMethodNotAllowed, "nope")
			}),
		)

		rec := serve(app, httptest.NewRequest(http.MethodGet, "/missing", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "nothing here", rec.Body.String())

		rec = serve(app, httptest.NewRequest(http.MethodPost, "/bad", nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		require.Equal(t, "nope", rec.Body.String())
	})
}

func TestAppMiddleware(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	setValue := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.Set(ctxKey{}, "from-middleware")
			return next(c)
		}
	}

	deny := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			return internal.ErrBadRequest("denied")
		}
	}

	app := internal.New(
		internal.WithMiddleware(trace("global"), setValue),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				v, _ := c.Get(ctxKey{}).(string)
				return c.String(http.StatusOK, v)
			}, trace("route-1"), trace("route-2"))

			r.Group(func(r internal.Router) {
				r.Use(deny)
				r.GET("/denied", func(c internal.Context) error {
					return c.NoContent(http.StatusNoContent)
				})
			})
		})),
	)

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "from-middleware", rec.Body.String())
	require.Equal(t, []string{"global", "route-1", "route-2"}, order)

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/denied", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppCookies(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithCookieOptions(cookie.WithMaxAge(60)),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				token, ok := c.Cookie()
				if !ok {
					c.DeleteCookie()
				} else {
					c.SetCookie(token + "x")
				}
				c.NoStore()
				c.AddHeader("X-Test", "1")
				c.AddHeader("X-Test", "2")
				return c.Redirect(http.StatusFound, "/next")
			})
		})),
	)

	t.Run("sets cookie from request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", "edge_saved=abc")
		rec := serve(app, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/next", rec.Header().Get("Location"))
		require.Equal(t, "private, no-store", rec.Header().Get("Cache-Control"))
		require.Equal(t, []string{"edge_saved=abcx; Path=/; HttpOnly; Secure; SameSite=Lax; Max-Age=60"}, rec.Header().Values("Set-Cookie"))
		require.Equal(t, []string{"1", "2"}, rec.Header().Values("X-Test"))
	})

	t.Run("clears without cookie", func(t *testing.T) {
		t.Parallel()

		rec := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, cookie.FormatClear(), rec.Header().Get("Set-Cookie"))
	})
}

type component string

func (c component) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func TestAppRender(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			return c.Render(http.StatusTeapot, component("<p>hi</p>"))
		})
	})))

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "<p>hi</p>", rec.Body.String())
}

func TestAppHealthChecks(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHealthChecks(
		internal.WithReadinessCheck("ok", func(context.Context) error { return nil }),
		internal.WithReadinessCheck("broken", func(context.Context) error { return errors.New("down") }),
		internal.WithLivenessPath("/livez"),
	))

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/livez", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), `"broken"`)
}

func TestAppStaticFiles(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"static/app.css": {Data: []byte("body{}")}}
	app := internal.New(internal.WithStaticFiles("/static/", fsys, "static"))

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	require.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/static/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
