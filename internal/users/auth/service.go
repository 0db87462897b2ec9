// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/platform/ctxutil"
	"github.com/taibuivan/userapi/internal/platform/sec"
	"github.com/taibuivan/userapi/internal/platform/validate"
	"github.com/taibuivan/userapi/pkg/normalize"
	"github.com/taibuivan/userapi/pkg/uuid"
)

// # Contracts & Types

// TokenProvider issues signed identity tokens. [*sec.TokenService] satisfies it.
type TokenProvider interface {
	GenerateToken(userID, userName string) (string, error)
}

// Config tunes login behaviour.
type Config struct {
	// DetailedLoginErrors tells the client whether the user or the password was wrong.
	DetailedLoginErrors bool

	// MaxLoginAttempts is the number of failures tolerated per window. Zero disables throttling.
	MaxLoginAttempts int

	// LockoutWindow is the lifetime of a failure counter.
	LockoutWindow time.Duration
}

// Service implements registration and login.
type Service struct {
	userRepository    UserRepository
	attemptRepository AttemptRepository
	tokenProvider     TokenProvider
	config            Config
}

// NewService constructs a new [Service]. A nil attempt repository disables throttling.
func NewService(users UserRepository, attempts AttemptRepository, tokens TokenProvider, config Config) *Service {
	if attempts == nil {
		attempts = NoopAttemptRepository{}
	}
	return &Service{
		userRepository:    users,
		attemptRepository: attempts,
		tokenProvider:     tokens,
		config:            config,
	}
}

// # Registration Flow

// RegisterInput holds the credentials of a new account.
// Password2 is optional; when set it must equal Password.
type RegisterInput struct {
	UserName  string
	Password  string
	Password2 string
}

/*
Register validates, hashes, and persists a brand new user account.

Returns:
  - *User: Created entity with empty collections
  - error: ValidationError, Conflict (user name taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	userName := normalize.UserName(input.UserName)

	validator := &validate.Validator{}
	validator.Required(FieldUserName, userName).
		MaxLen(FieldUserName, userName, MaxUserNameLength).
		Present(FieldPassword, input.Password).
		MaxBytes(FieldPassword, input.Password, MaxPasswordBytes).
		Custom(FieldPassword2, input.Password2 != "" && input.Password2 != input.Password, MsgPasswordsMismatch)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Early, friendly rejection. The store's unique index still settles races.
	_, err := service.userRepository.FindByUserName(context, userName)
	switch {
	case err == nil:
		return nil, apperr.Conflict(MsgUserNameTaken)
	case !apperr.HasCode(err, apperr.CodeNotFound):
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	user := &User{
		ID:           uuid.New(),
		UserName:     userName,
		PasswordHash: hashedPassword,
		Favourites:   []string{},
		History:      []string{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_registered",
		slog.String("user_id", user.ID),
		slog.String("user_name", user.UserName),
	)

	return user, nil
}

// RegisteredMessage is the confirmation shown after a successful registration.
func RegisteredMessage(user *User) string {
	return fmt.Sprintf(msgRegisteredFormat, user.UserName)
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	UserName string
	Password string
}

// LoginResult is a successful authentication.
type LoginResult struct {
	Token string
	User  *User
}

/*
Login verifies credentials and issues a token.

Description: Unknown users and wrong passwords both fail with AUTH_FAILED.
Whether the client can tell them apart depends on [Config.DetailedLoginErrors];
the log always can. Once [Config.MaxLoginAttempts] failures accumulate inside
the lockout window, attempts are refused with RATE_LIMITED.
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	userName := normalize.UserName(input.UserName)

	validator := &validate.Validator{}
	validator.Required(FieldUserName, userName).
		Present(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.checkThrottle(context, userName); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByUserName(context, userName)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, service.rejectLogin(context, userName, "user_not_found", msgUnknownUserFormat)
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, service.rejectLogin(context, userName, "password_mismatch", msgWrongPasswordFormat)
	}

	if err := service.attemptRepository.Reset(context, userName); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "login_attempts_reset_failed", slog.Any("error", err))
	}

	token, err := service.tokenProvider.GenerateToken(user.ID, user.UserName)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_failed: %w", err))
	}

	ctxutil.GetLogger(context).InfoContext(context, "login_succeeded",
		slog.String("user_id", user.ID),
	)

	return &LoginResult{Token: token, User: user}, nil
}

// checkThrottle refuses the attempt when the failure budget is spent.
// An unreachable counter store lets the attempt through.
func (service *Service) checkThrottle(context context.Context, userName string) error {
	if service.config.MaxLoginAttempts <= 0 {
		return nil
	}

	count, err := service.attemptRepository.Count(context, userName)
	if err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "login_attempts_lookup_failed", slog.Any("error", err))
		return nil
	}

	if count >= int64(service.config.MaxLoginAttempts) {
		ctxutil.GetLogger(context).WarnContext(context, "login_throttled",
			slog.String("user_name", userName),
			slog.Int64("attempts", count),
		)
		return apperr.RateLimited(int(service.config.LockoutWindow.Seconds()))
	}

	return nil
}

// rejectLogin records the failure and builds the client-facing error.
func (service *Service) rejectLogin(context context.Context, userName, reason, detailedFormat string) error {
	logger := ctxutil.GetLogger(context)

	if service.config.MaxLoginAttempts > 0 {
		if _, err := service.attemptRepository.Increment(context, userName, service.config.LockoutWindow); err != nil {
			logger.WarnContext(context, "login_attempts_increment_failed", slog.Any("error", err))
		}
	}

	logger.WarnContext(context, "login_failed",
		slog.String("user_name", userName),
		slog.String("reason", reason),
	)

	if service.config.DetailedLoginErrors {
		return apperr.InvalidCredentials(fmt.Sprintf(detailedFormat, userName))
	}
	return apperr.InvalidCredentials(MsgInvalidCredentials)
}
