// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the mapping from pgx errors to AppErrors.
*/
func TestWrap_Classification(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "User", "noop"))

	notFound := dberr.Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "User", "find_user")
	assert.True(t, apperr.HasCode(notFound, apperr.CodeNotFound))
	assert.Equal(t, "User not found", notFound.Error())

	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_username_key"}
	conflict := dberr.Wrap(unique, "User", "create_user")
	require.True(t, apperr.HasCode(conflict, apperr.CodeConflict))
	assert.True(t, dberr.IsUniqueViolation(conflict))

	internal := dberr.Wrap(errors.New("connection refused"), "User", "create_user")
	ae := apperr.As(internal)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeInternal, ae.Code)
	assert.Contains(t, ae.Cause.Error(), "create_user")
}
