package internal_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgesaved/internal"
)

func TestAppRun(t *testing.T) {
	t.Parallel()

	t.Run("serves until context cancelled", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				return c.String(http.StatusOK, "up")
			})
		})))

		ctx, cancel := context.WithCancel(context.Background())
		addrCh := make(chan net.Addr, 1)
		var shutdownCalled, startupCalled bool

		done := make(chan error, 1)
		go func() {
			done <- app.Run("127.0.0.1:0",
				internal.WithContext(ctx),
				internal.OnReady(func(a net.Addr) { addrCh <- a }),
				internal.StartupHook(func(context.Context) error {
					startupCalled = true
					return nil
				}),
				internal.ShutdownHook(func(context.Context) error {
					shutdownCalled = true
					return nil
				}),
				internal.ShutdownTimeout(time.Second),
			)
		}()

		addr := <-addrCh
		resp, err := http.Get("http://" + addr.String() + "/")
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cancel()
		require.NoError(t, <-done)
		require.True(t, startupCalled)
		require.True(t, shutdownCalled)
	})

	t.Run("failing startup hook aborts", func(t *testing.T) {
		t.Parallel()

		hookErr := errors.New("not ready")
		err := internal.New().Run("127.0.0.1:0",
			internal.StartupHook(func(context.Context) error { return hookErr }),
		)
		require.ErrorIs(t, err, hookErr)
	})

	t.Run("shutdown hook errors are joined", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		hookErr := errors.New("close failed")

		done := make(chan error, 1)
		go func() {
			done <- internal.New().Run("127.0.0.1:0",
				internal.WithContext(ctx),
				internal.OnReady(func(net.Addr) { cancel() }),
				internal.ShutdownHook(func(context.Context) error { return hookErr }),
			)
		}()

		require.ErrorIs(t, <-done, hookErr)
	})

	t.Run("listen error is returned", func(t *testing.T) {
		t.Parallel()

		err := internal.New().Run("256.0.0.1:bad")
		require.Error(t, err)
	})
}
