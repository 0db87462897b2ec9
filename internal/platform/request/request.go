// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/platform/ctxutil"
	"github.com/taibuivan/userapi/internal/platform/sec"
	"github.com/taibuivan/userapi/internal/platform/validate"
)

// maxBodyBytes caps request bodies; credentials never need more.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are accepted so that clients may send optional profile data
alongside the credentials.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	body := http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request, percent-decoded.

The router matches on the raw path whenever the request carries encoded
separators, so those segments arrive still escaped and are decoded here.
Segments matched on the already decoded path are returned unchanged.

Returns:
  - error: apperr.ValidationError if the segment is not a valid escape sequence
*/
func Param(request *http.Request, name string) (string, error) {
	value := chi.URLParam(request, name)
	if request.URL.RawPath == "" {
		return value, nil
	}

	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", apperr.ValidationError(name+": Invalid URL encoding", apperr.FieldError{
			Field:   name,
			Message: "Invalid URL encoding",
		})
	}
	return decoded, nil
}

/*
RequiredClaims ensures the request is authenticated and returns the identity claim.

Returns:
  - *sec.AuthClaims: The authenticated identity
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

/*
RequiredUserID returns the User ID of the currently logged-in user.
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
