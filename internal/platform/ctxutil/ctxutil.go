// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil carries the per-request values of the user API: the
// correlation id, the request logger and the verified token identity.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/userapi/internal/platform/sec"
)

// valueKey is unexported so no other package can read or overwrite these entries.
type valueKey uint8

const (
	requestIDKey valueKey = iota + 1
	loggerKey
	authUserKey
)

func lookup[T any](ctx context.Context, key valueKey) (T, bool) {
	value, ok := ctx.Value(key).(T)
	return value, ok
}

// WithRequestID attaches the X-Request-ID correlation value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the correlation value, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	id, _ := lookup[string](ctx, requestIDKey)
	return id
}

// WithLogger attaches the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := lookup[*slog.Logger](ctx, loggerKey); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithAuthUser attaches the claims of a verified token.
func WithAuthUser(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, authUserKey, claims)
}

// GetAuthUser returns the verified claims, or nil for an anonymous request.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := lookup[*sec.AuthClaims](ctx, authUserKey)
	return claims
}
