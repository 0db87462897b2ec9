// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis connects the login-attempt counters to Redis.

Only short-lived per-user-name counters live here. Authenticated traffic never
touches Redis, and losing it only resets the counters.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// tune sizes the pool for one INCR/GET/DEL per login request.
func tune(options *redis.Options) {
	options.PoolSize = 10
	options.MinIdleConns = 1
	options.MaxIdleConns = 4
	options.DialTimeout = 3 * time.Second
	options.ReadTimeout = 2 * time.Second
	options.WriteTimeout = 2 * time.Second
}

// NewClient connects to redisURL and refuses to return a client that cannot
// answer a ping.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse URL: %w", err)
	}
	tune(options)

	client := redis.NewClient(options)
	if err := Ping(context, client); err != nil {
		return nil, closeAfter(err, client)
	}

	logger.Info("redis_client_connected", slog.String("addr", options.Addr), slog.Int("db", options.DB))
	return client, nil
}

// Ping backs the readiness probe.
func Ping(context stdctx.Context, client redis.UniversalClient) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}

func closeAfter(err error, client *redis.Client) error {
	if closeErr := client.Close(); closeErr != nil {
		return fmt.Errorf("%w (close: %v)", err, closeErr)
	}
	return err
}
