package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-course-portal/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

var errSample = apperror.New(apperror.CodeConflict, "already running", http.StatusConflict)

func TestToHTTP(t *testing.T) {
	t.Run("nil_error", func(t *testing.T) {
		res := apperror.ToHTTP(nil)
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Empty(t, res.Code)
	})

	t.Run("wrapped_app_error", func(t *testing.T) {
		err := fmt.Errorf("submit: %w", errSample.Wrap(errors.New("cause")))

		res := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, res.Status)
		assert.Equal(t, apperror.CodeConflict, res.Code)
		assert.Equal(t, "already running", res.Message)
		assert.ErrorIs(t, err, errSample)
	})

	t.Run("plain_error", func(t *testing.T) {
		res := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, apperror.CodeInternalError, res.Code)
	})
}
