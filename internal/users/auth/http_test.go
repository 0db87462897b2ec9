// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/userapi/internal/users/auth"
)

func post(t *testing.T, handler http.Handler, path, body string) (int, map[string]any) {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	payload := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return recorder.Code, payload
}

/*
TestHandler_RegisterAndLogin verifies the public JSON contract of both endpoints.
*/
func TestHandler_RegisterAndLogin(t *testing.T) {
	service, _, tokens := newService(t, auth.Config{})
	router := auth.NewHandler(service).Routes()

	status, body := post(t, router, "/register", `{"userName":"alice","password":"p1","password2":"p1"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "User alice successfully registered", body["message"])

	status, body = post(t, router, "/register", `{"userName":"alice","password":"p2"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "User Name already taken", body["message"])

	status, body = post(t, router, "/login", `{"userName":"alice","password":"p1"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "login successful", body["message"])

	token, ok := body["token"].(string)
	require.True(t, ok)
	claims, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserName)

	status, body = post(t, router, "/login", `{"userName":"alice","password":"nope"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Invalid login credentials", body["message"])
	assert.NotContains(t, body, "token")
}

/*
TestHandler_BadBodies verifies malformed and incomplete payloads.
*/
func TestHandler_BadBodies(t *testing.T) {
	service, _, _ := newService(t, auth.Config{})
	router := auth.NewHandler(service).Routes()

	tests := []struct {
		name string
		path string
		body string
	}{
		{"register_not_json", "/register", `not json`},
		{"register_empty", "/register", `{}`},
		{"login_not_json", "/login", `{"userName":`},
		{"login_missing_password", "/login", `{"userName":"alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, router, tt.path, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, status)
			assert.NotEmpty(t, body["message"])
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
		})
	}
}
