// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// A lookup that matches nothing returns an [apperr.AppError] with code NOT_FOUND.
// Create returns a CONFLICT error carrying [MsgUserNameTaken] when the user
// name is already stored, even when two registrations race.
type UserRepository interface {
	FindByUserName(context context.Context, userName string) (*User, error)
	Create(context context.Context, user *User) error
}

// # Volatile Data Access

// AttemptRepository counts failed logins per user name inside a sliding window.
type AttemptRepository interface {

	/*
		Increment records one failed attempt and returns the new count.
		The first attempt in a window starts the window's expiry.
	*/
	Increment(context context.Context, userName string, window time.Duration) (int64, error)

	// Count returns the failures recorded in the current window.
	Count(context context.Context, userName string) (int64, error)

	// Reset clears the counter after a successful login.
	Reset(context context.Context, userName string) error
}

// NoopAttemptRepository disables login throttling.
type NoopAttemptRepository struct{}

// Increment implements [AttemptRepository].
func (NoopAttemptRepository) Increment(context.Context, string, time.Duration) (int64, error) {
	return 0, nil
}

// Count implements [AttemptRepository].
func (NoopAttemptRepository) Count(context.Context, string) (int64, error) { return 0, nil }

// Reset implements [AttemptRepository].
func (NoopAttemptRepository) Reset(context.Context, string) error { return nil }
