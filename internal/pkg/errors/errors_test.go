package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleet-logistics-service/internal/pkg/errors"
)

func TestNotFound(t *testing.T) {
	err := errors.NotFound("Station", "STA1")

	assert.Equal(t, "Station with ID STA1 not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, errors.CodeNotFound, err.Code)
	// шаблон не должен меняться
	assert.Equal(t, "Resource not found", errors.ErrNotFound.Message)
}

func TestAlreadyExists(t *testing.T) {
	assert.Equal(t, "Barge with ID B1 already exists", errors.AlreadyExists("Barge", "ID", "B1").Message)
	assert.Equal(t, "Customer with email a@b.co already exists", errors.AlreadyExists("Customer", "email", "a@b.co").Message)
	assert.Equal(t, http.StatusConflict, errors.AlreadyExists("Barge", "ID", "B1").StatusCode)
}

func TestAs_WrappedChain(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := fmt.Errorf("list stations: %w", errors.ErrDatabaseError.Wrap(cause))

	appErr, ok := errors.As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, errors.CodeDatabase, appErr.Code)
	assert.ErrorIs(t, appErr, cause)
	assert.True(t, errors.HasCode(wrapped, errors.CodeDatabase))

	_, ok = errors.As(cause)
	assert.False(t, ok)
}

func TestWithDetails_DoesNotMutateTemplate(t *testing.T) {
	err := errors.ErrValidation.WithDetails(map[string]interface{}{"field": "email"})

	assert.Equal(t, "email", err.Details["field"])
	assert.Empty(t, errors.ErrValidation.Details)
}
