package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredError_Error(t *testing.T) {
	err := New(ErrCodeInvalidRequest, "n_output has to be an integer")
	assert.Equal(t, "[INVALID_REQUEST] n_output has to be an integer", err.Error())

	wrapped := Wrap(ErrCodeInternal, "generation failed", stderrors.New("boom"))
	assert.Equal(t, "[INTERNAL] generation failed: boom", wrapped.Error())
}

func TestStructuredError_Unwrap(t *testing.T) {
	err := Wrap(ErrCodeUnavailable, "model busy", context.Canceled)
	assert.True(t, stderrors.Is(err, context.Canceled))
}

func TestStructuredError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want int
	}{
		{"invalid usage", InvalidUsage("bad"), http.StatusBadRequest},
		{"internal", New(ErrCodeInternal, "x"), http.StatusInternalServerError},
		{"unavailable", New(ErrCodeUnavailable, "x"), http.StatusServiceUnavailable},
		{"rate limited", New(ErrCodeRateLimitExceeded, "x"), http.StatusTooManyRequests},
		{"not found", New(ErrCodeNotFound, "x"), http.StatusNotFound},
		{"method", New(ErrCodeMethodNotAllowed, "x"), http.StatusMethodNotAllowed},
		{"override", InvalidUsage("x").WithStatus(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity},
		{"unknown code", New("SOMETHING", "x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestHTTPStatus_Chain(t *testing.T) {
	inner := InvalidUsage("No sentence provided! ?sentence=")
	err := fmt.Errorf("resolve: %w", inner)

	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("plain")))

	se, ok := As(err)
	require.True(t, ok)
	assert.True(t, se.IsClientError())
	assert.Equal(t, "No sentence provided! ?sentence=", se.Message)
}
