// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string, ttl time.Duration) *TokenService {
	t.Helper()
	service, err := NewTokenService(TokenConfig{Secret: secret, TTL: ttl, Issuer: "userapi"})
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that an issued token decodes to the same identity.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestService(t, "super-secret", time.Hour)

	token, err := service.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.UserName)
	assert.Equal(t, "userapi", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

/*
TestTokenService_ClaimShape pins the JSON field names of the identity claim.
*/
func TestTokenService_ClaimShape(t *testing.T) {
	service := newTestService(t, "super-secret", 0)

	token, err := service.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	parsed := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, parsed)
	require.NoError(t, err)

	assert.Equal(t, "user-1", parsed["_id"])
	assert.Equal(t, "alice", parsed["userName"])
	assert.NotContains(t, parsed, "exp")
	assert.NotContains(t, parsed, "password")
}

/*
TestTokenService_NoExpiry verifies that a zero TTL issues long-lived tokens.
*/
func TestTokenService_NoExpiry(t *testing.T) {
	service := newTestService(t, "super-secret", 0)

	token, err := service.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	service.now = func() time.Time { return time.Now().Add(10 * 365 * 24 * time.Hour) }
	_, err = service.VerifyToken(token)
	assert.NoError(t, err)
}

/*
TestTokenService_Rejections covers every way a token must fail verification.
*/
func TestTokenService_Rejections(t *testing.T) {
	service := newTestService(t, "right-secret", time.Hour)
	valid, err := service.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	foreign, err := newTestService(t, "wrong-secret", time.Hour).GenerateToken("user-1", "alice")
	require.NoError(t, err)

	// Flip the first character of the signature segment.
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	flipped := "A"
	if parts[2][0] == 'A' {
		flipped = "B"
	}
	tampered := parts[0] + "." + parts[1] + "." + flipped + parts[2][1:]

	// Alter a single character of the payload segment.
	payload := []byte(parts[1])
	if payload[5] == 'x' {
		payload[5] = 'y'
	} else {
		payload[5] = 'x'
	}
	tamperedPayload := parts[0] + "." + string(payload) + "." + parts[2]

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, AuthClaims{UserID: "user-1", UserName: "alice"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	otherIssuer, err := NewTokenService(TokenConfig{Secret: "right-secret", TTL: time.Hour, Issuer: "someone-else"})
	require.NoError(t, err)
	wrongIssuer, err := otherIssuer.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	noExpiry, err := newTestService(t, "right-secret", 0).GenerateToken("user-1", "alice")
	require.NoError(t, err)

	anonymous, err := service.GenerateToken("", "")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"foreign_secret", foreign},
		{"tampered_signature", tampered},
		{"tampered_payload", tamperedPayload},
		{"alg_none", unsigned},
		{"wrong_issuer", wrongIssuer},
		{"missing_expiry", noExpiry},
		{"empty_identity", anonymous},
		{"malformed", "not.a.jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

/*
TestTokenService_Expired verifies that the exp claim is enforced.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestService(t, "super-secret", time.Minute)

	token, err := service.GenerateToken("user-1", "alice")
	require.NoError(t, err)

	service.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = service.VerifyToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

/*
TestNewTokenService_Config rejects configurations that would verify nothing.
*/
func TestNewTokenService_Config(t *testing.T) {
	_, err := NewTokenService(TokenConfig{Secret: ""})
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewTokenService(TokenConfig{Secret: "s", TTL: -time.Second})
	assert.Error(t, err)
}
