package middlewares_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgesaved/middlewares"
)

func TestPanicError(t *testing.T) {
	t.Parallel()

	t.Run("formats panic value", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "panic: boom", (&middlewares.PanicError{Value: "boom"}).Error())
		require.Equal(t, "panic: 42", (&middlewares.PanicError{Value: 42}).Error())
		require.Equal(t, "panic: <nil>", (&middlewares.PanicError{}).Error())
	})

	t.Run("unwraps error values", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("cause")
		pe := &middlewares.PanicError{Value: cause}
		require.ErrorIs(t, pe, cause)
		require.Nil(t, (&middlewares.PanicError{Value: "str"}).Unwrap())
	})

	t.Run("detects wrapped panic errors", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("handler: %w", &middlewares.PanicError{Value: "x"})
		require.True(t, middlewares.IsPanicError(wrapped))

		pe, ok := middlewares.AsPanicError(wrapped)
		require.True(t, ok)
		require.Equal(t, "x", pe.Value)

		_, ok = middlewares.AsPanicError(errors.New("plain"))
		require.False(t, ok)
		require.False(t, middlewares.IsPanicError(nil))
	})
}
