// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/platform/constants"
	"github.com/taibuivan/userapi/internal/platform/ctxutil"
	"github.com/taibuivan/userapi/internal/platform/respond"
	"github.com/taibuivan/userapi/internal/platform/sec"
)

// TokenVerifier is satisfied by [*sec.TokenService].
type TokenVerifier interface {
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// Authenticate guards a route group with the "jwt" Authorization scheme.
//
// # Flow
//  1. Read 'Authorization: jwt <token>'. The scheme keyword is case-insensitive.
//  2. Missing header, any other scheme, or a token that fails verification
//     aborts with 401 before the handler runs.
//  3. On success the verified claims are placed in the request context
//     ([ctxutil.WithAuthUser]). No store lookup happens here.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := extractToken(request.Header.Get(constants.HeaderAuthorization))
			if !ok {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "token_rejected",
					"error", err.Error(),
				)
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			recordIdentity(request.Context(), claims.UserID)
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// extractToken splits "<scheme> <token>" and checks the scheme keyword.
func extractToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.AuthScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
