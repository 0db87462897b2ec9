// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/userapi/internal/platform/config"
)

/*
TestLoad_Defaults verifies the defaults applied on top of the required variables.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/users")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "userapi", cfg.JWTIssuer)
	assert.Equal(t, 5, cfg.LoginMaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.LoginLockoutWindow)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.LoginErrorsDetailed)
	assert.False(t, cfg.UsesRedis())
	assert.Equal(t, "development", cfg.Environment)
}

/*
TestLoad_MissingSecret verifies that the server refuses to start without a signing secret.
*/
func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORAGE_DRIVER", config.DriverMemory)

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestLoad_DriverRules verifies the cross-field storage validation.
*/
func TestLoad_DriverRules(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")

	t.Setenv("STORAGE_DRIVER", config.DriverPostgres)
	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrMissingDatabaseURL)

	t.Setenv("STORAGE_DRIVER", "mongo")
	_, err = config.Load()
	assert.Error(t, err)

	t.Setenv("STORAGE_DRIVER", config.DriverMemory)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_TTL", "0s")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Zero(t, cfg.JWTTTL)
}

/*
TestLoad_LoginThrottleRules verifies that the throttle cannot be configured into a no-op.
*/
func TestLoad_LoginThrottleRules(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", config.DriverMemory)

	for _, window := range []string{"0s", "-1m"} {
		t.Setenv("LOGIN_LOCKOUT_WINDOW", window)
		_, err := config.Load()
		assert.ErrorContains(t, err, "LOGIN_LOCKOUT_WINDOW", window)
	}

	t.Setenv("LOGIN_LOCKOUT_WINDOW", "1m")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "0")
	_, err := config.Load()
	assert.ErrorContains(t, err, "LOGIN_MAX_ATTEMPTS")

	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.LoginLockoutWindow)
	assert.Equal(t, 3, cfg.LoginMaxAttempts)
}
