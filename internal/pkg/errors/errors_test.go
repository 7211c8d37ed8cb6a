package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globe-engine/internal/pkg/errors"
)

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	withDetails := errors.ErrInvalidArgument.WithDetails(map[string]interface{}{"radius": -1.0})

	assert.Equal(t, -1.0, withDetails.Details["radius"])
	assert.Empty(t, errors.ErrInvalidArgument.Details)
	assert.Equal(t, http.StatusBadRequest, withDetails.StatusCode)
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("load feature 3: %w", errors.ErrMalformedGeometry.WithMessage("unsupported type %q", "Point"))

	assert.True(t, stderrors.Is(wrapped, errors.ErrMalformedGeometry))
	assert.False(t, stderrors.Is(wrapped, errors.ErrDuplicateKey))

	var appErr *errors.AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, `unsupported type "Point"`, appErr.Message)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "DUPLICATE_KEY: Duplicate country code", errors.ErrDuplicateKey.Error())
}

func TestAsAppError(t *testing.T) {
	appErr, ok := errors.AsAppError(fmt.Errorf("density: %w", errors.ErrRasterNotLoaded))
	assert.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.StatusCode)

	_, ok = errors.AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
}
