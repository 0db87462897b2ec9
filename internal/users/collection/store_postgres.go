// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"fmt"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/platform/database/schema"
	"github.com/taibuivan/userapi/internal/platform/dberr"
	"github.com/taibuivan/userapi/internal/platform/postgres"
	"github.com/taibuivan/userapi/pkg/uuid"
)

// PostgresRepository implements [Repository] on the text[] columns of users.account.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// column maps a kind to its array column.
func column(kind Kind) (string, error) {
	switch kind {
	case Favourites:
		return schema.UserAccount.Favourites, nil
	case History:
		return schema.UserAccount.History, nil
	default:
		return "", UnknownKind(kind)
	}
}

/*
List returns the stored collection.
*/
func (repository *PostgresRepository) List(context context.Context, userID string, kind Kind) ([]string, error) {
	col, err := column(kind)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		col, schema.UserAccount.Table, schema.UserAccount.ID)

	return repository.scanOne(context, query, "postgres_collection_list_failed", userID)
}

/*
Add appends itemID unless it is already a member.

Description: The membership test and the append run inside one UPDATE, so the
row lock serialises concurrent writers and duplicates cannot appear.
*/
func (repository *PostgresRepository) Add(context context.Context, userID string, kind Kind, itemID string) ([]string, error) {
	col, err := column(kind)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = CASE WHEN $2 = ANY(%[2]s) THEN %[2]s ELSE array_append(%[2]s, $2) END,
		    %[3]s = NOW()
		WHERE %[4]s = $1
		RETURNING %[2]s`,
		schema.UserAccount.Table, col, schema.UserAccount.UpdatedAt, schema.UserAccount.ID)

	return repository.scanOne(context, query, "postgres_collection_add_failed", userID, itemID)
}

/*
Remove deletes every occurrence of itemID. A non-member leaves the set unchanged.
*/
func (repository *PostgresRepository) Remove(context context.Context, userID string, kind Kind, itemID string) ([]string, error) {
	col, err := column(kind)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = array_remove(%[2]s, $2),
		    %[3]s = NOW()
		WHERE %[4]s = $1
		RETURNING %[2]s`,
		schema.UserAccount.Table, col, schema.UserAccount.UpdatedAt, schema.UserAccount.ID)

	return repository.scanOne(context, query, "postgres_collection_remove_failed", userID, itemID)
}

func (repository *PostgresRepository) scanOne(context context.Context, query, action string, userID string, args ...any) ([]string, error) {
	// A malformed id cannot match the uuid primary key.
	if !uuid.IsValid(userID) {
		return nil, apperr.NotFound("User")
	}

	var items []string
	err := repository.db.QueryRow(context, query, append([]any{userID}, args...)...).Scan(&items)
	if err != nil {
		return nil, dberr.Wrap(err, "User", action)
	}

	if items == nil {
		items = []string{}
	}
	return items, nil
}
