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

	"github.com/taibuivan/userapi/internal/platform/apperr"
)

/*
TestAppError_Statuses pins the status code of every constructor.
*/
func TestAppError_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"validation", apperr.ValidationError("bad"), apperr.CodeValidation, http.StatusUnprocessableEntity},
		{"conflict", apperr.Conflict("taken"), apperr.CodeConflict, http.StatusUnprocessableEntity},
		{"credentials", apperr.InvalidCredentials("nope"), apperr.CodeAuthFailed, http.StatusUnprocessableEntity},
		{"not_found", apperr.NotFound("User"), apperr.CodeNotFound, http.StatusUnprocessableEntity},
		{"unauthorized", apperr.Unauthorized("token"), apperr.CodeUnauthorized, http.StatusUnauthorized},
		{"rate_limited", apperr.RateLimited(60), apperr.CodeRateLimited, http.StatusTooManyRequests},
		{"internal", apperr.Internal(errors.New("boom")), apperr.CodeInternal, http.StatusInternalServerError},
		{"route_not_found", apperr.RouteNotFound(), apperr.CodeNotFound, http.StatusNotFound},
		{"method_not_allowed", apperr.MethodNotAllowed(), apperr.CodeMethodNotAllowed, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

/*
TestAppError_Chain verifies that wrapped AppErrors remain discoverable.
*/
func TestAppError_Chain(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := fmt.Errorf("collection_service_add_failed: %w", apperr.Internal(cause))

	require.NotNil(t, apperr.As(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeInternal))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.ErrorIs(t, wrapped, cause)

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.Equal(t, "User not found", apperr.NotFound("User").Error())
}
