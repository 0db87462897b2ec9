// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/userapi/internal/platform/constants"
)

// RedisAttemptRepository implements [AttemptRepository] with expiring Redis counters.
type RedisAttemptRepository struct {
	client redis.UniversalClient
}

// NewAttemptRepository creates a new Redis-backed AttemptRepository.
func NewAttemptRepository(client redis.UniversalClient) *RedisAttemptRepository {
	return &RedisAttemptRepository{client: client}
}

func attemptKey(userName string) string {
	return constants.RedisPrefixLoginAttempts + userName
}

/*
Increment bumps the counter for userName.

Description: INCR creates the key at 1; only then is the TTL set, so later
failures do not extend the window.
*/
func (repository *RedisAttemptRepository) Increment(context context.Context, userName string, window time.Duration) (int64, error) {
	key := attemptKey(userName)

	count, err := repository.client.Incr(context, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_login_attempt_incr_failed: %w", err)
	}

	if count == 1 {
		if err := repository.client.Expire(context, key, window).Err(); err != nil {
			return count, fmt.Errorf("redis_login_attempt_expire_failed: %w", err)
		}
	}

	return count, nil
}

// Count returns the current counter, or zero when no window is open.
func (repository *RedisAttemptRepository) Count(context context.Context, userName string) (int64, error) {
	count, err := repository.client.Get(context, attemptKey(userName)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_login_attempt_get_failed: %w", err)
	}
	return count, nil
}

// Reset deletes the counter.
func (repository *RedisAttemptRepository) Reset(context context.Context, userName string) error {
	if err := repository.client.Del(context, attemptKey(userName)).Err(); err != nil {
		return fmt.Errorf("redis_login_attempt_delete_failed: %w", err)
	}
	return nil
}
