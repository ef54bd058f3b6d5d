package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError("malformed catalog response", http.StatusBadGateway, map[string]any{"missing": "height"})

	assert.Equal(t, "malformed catalog response", err.Error())
	assert.Equal(t, CodeAPIError, err.Code)
	assert.Equal(t, "height", err.Context["missing"])
}

func TestIsNotFound(t *testing.T) {
	notFound := NewAPIError("Client error: 404", http.StatusNotFound, nil)
	wrapped := fmt.Errorf("render: %w", notFound)

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(NewAPIError("Server error: 502", http.StatusBadGateway, nil)))
	assert.False(t, IsNotFound(stderrors.New("oh no")))
}

func TestAsAPIError(t *testing.T) {
	apiErr, ok := AsAPIError(fmt.Errorf("outer: %w", NewAPIError("Client error: 400", 400, map[string]any{"url": "x"})))
	require.True(t, ok)
	assert.Equal(t, CodeAPIError, apiErr.Code)
	assert.Equal(t, 400, apiErr.StatusCode)

	_, ok = AsAPIError(NewValidationError("name is required", "name", ""))
	assert.False(t, ok)
}

func TestValidationErrorContext(t *testing.T) {
	err := NewValidationError("name is required", "name", "")

	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "name", err.Context["field"])
	assert.Equal(t, "name is required", err.Error())
}
