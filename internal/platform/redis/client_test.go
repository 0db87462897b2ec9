// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/userapi/internal/platform/redis"
)

/*
TestNewClient_Connects verifies URL parsing and the startup ping.
*/
func TestNewClient_Connects(t *testing.T) {
	server := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := redisstore.NewClient(context.Background(), "redis://"+server.Addr(), logger)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, redisstore.Ping(context.Background(), client))
	assert.Equal(t, 10, client.Options().PoolSize)
	assert.Equal(t, 2*time.Second, client.Options().ReadTimeout)

	server.Close()
	assert.Error(t, redisstore.Ping(context.Background(), client))
}

/*
TestNewClient_InvalidURL verifies that malformed URLs fail before dialing.
*/
func TestNewClient_InvalidURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := redisstore.NewClient(context.Background(), "http://not-redis", logger)
	assert.Error(t, err)
}
