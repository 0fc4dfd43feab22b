// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/migrationboard/internal/platform/apperr"
)

/*
TestConstructors verifies the status code and code of every constructor.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("Category"), http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", apperr.Unauthorized("Authentication required"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"validation", apperr.ValidationError("Validation failed"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"rate_limited", apperr.RateLimited(1), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"unavailable", apperr.ServiceUnavailable("down"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}

	assert.Equal(t, "Category not found", apperr.NotFound("Category").Error())
}

/*
TestAs finds an AppError through wrapping and keeps the cause reachable.
*/
func TestAs(t *testing.T) {
	cause := errors.New("pdf: font missing")
	wrapped := fmt.Errorf("report: %w", apperr.Internal(cause))

	appError := apperr.As(wrapped)
	require.NotNil(t, appError)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "An unexpected error occurred", appError.Message)

	assert.Nil(t, apperr.As(cause))
	assert.False(t, apperr.IsAppError(cause))
}
