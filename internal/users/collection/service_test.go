// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/users/auth"
	"github.com/taibuivan/userapi/internal/users/collection"
	"github.com/taibuivan/userapi/internal/users/memstore"
)

func newService(t *testing.T) *collection.Service {
	t.Helper()
	store := memstore.New()
	require.NoError(t, store.Create(context.Background(), &auth.User{ID: "u-1", UserName: "alice", PasswordHash: "h"}))
	return collection.NewService(store)
}

/*
TestService_AddIsIdempotent verifies set semantics for both kinds.
*/
func TestService_AddIsIdempotent(t *testing.T) {
	for _, kind := range collection.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			ctx := context.Background()
			service := newService(t)

			first, err := service.Add(ctx, "u-1", kind, "42")
			require.NoError(t, err)
			second, err := service.Add(ctx, "u-1", kind, "42")
			require.NoError(t, err)

			assert.Equal(t, []string{"42"}, first)
			assert.Equal(t, first, second)
		})
	}
}

/*
TestService_RemoveNonMember verifies that removing an absent item changes nothing.
*/
func TestService_RemoveNonMember(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	_, err := service.Add(ctx, "u-1", collection.History, "a")
	require.NoError(t, err)

	items, err := service.Remove(ctx, "u-1", collection.History, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, items)
}

/*
TestService_KindsAreIndependent verifies that favourites and history do not share members.
*/
func TestService_KindsAreIndependent(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	_, err := service.Add(ctx, "u-1", collection.Favourites, "42")
	require.NoError(t, err)

	history, err := service.List(ctx, "u-1", collection.History)
	require.NoError(t, err)
	assert.Equal(t, []string{}, history)
}

/*
TestService_Rejections verifies item validation and unknown users.
*/
func TestService_Rejections(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	_, err := service.Add(ctx, "u-1", collection.Favourites, "")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.Add(ctx, "u-1", collection.Favourites, strings.Repeat("x", collection.MaxItemIDLength+1))
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.Remove(ctx, "u-1", collection.Favourites, "  ")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.List(ctx, "ghost", collection.Favourites)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeNotFound, appErr.Code)
	assert.Equal(t, "User not found", appErr.Message)

	_, err = service.List(ctx, "u-1", collection.Kind("wishlist"))
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	assert.ErrorIs(t, err, collection.ErrUnknownKind)
}
