// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Success payloads are written as-is (the public contract returns bare
// objects and arrays, not a data envelope). Error payloads always carry a
// stable message field plus a machine-readable code:
//
//   - [Error] writes {"error": ..., "code": ...} (protected routes).
//   - [Failure] writes {"message": ..., "code": ...} (register and login).
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/platform/constants"
	"github.com/taibuivan/userapi/internal/platform/ctxutil"
)

// ErrorEnvelope is the JSON envelope for error responses on protected routes.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// FailureEnvelope is the JSON envelope for error responses on public auth routes.
type FailureEnvelope struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// MessageEnvelope is the JSON body of a plain confirmation.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload as the body.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, data)
}

// Message writes a 200 OK {"message": msg} confirmation.
func Message(writer http.ResponseWriter, msg string) {
	OK(writer, MessageEnvelope{Message: msg})
}

// Error converts any Go error into the {"error"} JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := resolve(request, err)
	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// Failure converts any Go error into the {"message"} JSON API error response.
func Failure(writer http.ResponseWriter, request *http.Request, err error) {
	appError := resolve(request, err)
	JSON(writer, appError.HTTPStatus, FailureEnvelope{
		Message: appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// resolve maps err to an [apperr.AppError], logging anything that is not client-safe.
func resolve(request *http.Request, err error) *apperr.AppError {
	logger := ctxutil.GetLogger(request.Context())
	requestID := ctxutil.GetRequestID(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", requestID),
			slog.Any("cause", appError.Cause),
		)
	}

	return appError
}
