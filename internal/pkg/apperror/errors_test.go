// internal/pkg/apperror/errors_test.go
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Unauthenticated("no token"), http.StatusUnauthorized},
		{Forbidden("admins only"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{Internal("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus(), "code %s", tt.err.Code)
	}
}

func TestAs(t *testing.T) {
	t.Run("direct error", func(t *testing.T) {
		appErr, ok := As(NotFound("missing"))
		require.True(t, ok)
		assert.Equal(t, CodeNotFound, appErr.Code)
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", Conflict("duplicate"))

		appErr, ok := As(wrapped)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, appErr.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := As(errors.New("something else"))
		assert.False(t, ok)
	})
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to reach database", cause)

	assert.Equal(t, "failed to reach database", err.Error())
	assert.ErrorIs(t, err, cause)
}
