// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/platform/database/schema"
	"github.com/taibuivan/userapi/internal/platform/dberr"
	"github.com/taibuivan/userapi/internal/platform/postgres"
)

// # User Repository

var (
	account = schema.UserAccount

	selectUserByNameSQL = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(account.Columns(), ", "), account.Table, account.UserName)

	insertUserSQL = fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		account.Table,
		account.ID, account.UserName, account.PasswordHash,
		account.Favourites, account.History, account.CreatedAt, account.UpdatedAt)
)

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db postgres.DBTX) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

/*
Create persists a new account row.

Description: Empty collections are stored as '{}' rather than NULL. The unique
index on username is the final arbiter for concurrent registrations.
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.Favourites == nil {
		user.Favourites = []string{}
	}
	if user.History == nil {
		user.History = []string{}
	}

	_, err := repository.db.Exec(context, insertUserSQL,
		user.ID,
		user.UserName,
		user.PasswordHash,
		user.Favourites,
		user.History,
		user.CreatedAt,
	)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			conflict := apperr.Conflict(MsgUserNameTaken)
			conflict.Cause = err
			return conflict
		}
		return dberr.Wrap(err, "User", "postgres_user_repo_create_failed")
	}

	return nil
}

// FindByUserName retrieves an account by its exact (case-sensitive) user name.
func (repository *PostgresUserRepository) FindByUserName(context context.Context, userName string) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(context, selectUserByNameSQL, userName).Scan(
		&user.ID,
		&user.UserName,
		&user.PasswordHash,
		&user.Favourites,
		&user.History,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User", "postgres_user_repo_find_by_username_failed")
	}

	return user, nil
}
