// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package memstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/users/auth"
	"github.com/taibuivan/userapi/internal/users/collection"
	"github.com/taibuivan/userapi/internal/users/memstore"
)

func seed(t *testing.T, store *memstore.Store, id, name string) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), &auth.User{ID: id, UserName: name, PasswordHash: "h"}))
}

/*
TestStore_UniqueUserName verifies the user-name index.
*/
func TestStore_UniqueUserName(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store, "u-1", "alice")

	err := store.Create(ctx, &auth.User{ID: "u-2", UserName: "alice"})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

	// Case-sensitive: a different spelling is a different user.
	require.NoError(t, store.Create(ctx, &auth.User{ID: "u-3", UserName: "Alice"}))

	user, err := store.FindByUserName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, []string{}, user.Favourites)

	_, err = store.FindByUserName(ctx, "missing")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestStore_SetSemantics verifies idempotent add and no-op remove.
*/
func TestStore_SetSemantics(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store, "u-1", "alice")

	items, err := store.Add(ctx, "u-1", collection.Favourites, "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, items)

	items, err = store.Add(ctx, "u-1", collection.Favourites, "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, items)

	items, err = store.Remove(ctx, "u-1", collection.Favourites, "nope")
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, items)

	history, err := store.List(ctx, "u-1", collection.History)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotNil(t, history)

	items, err = store.Remove(ctx, "u-1", collection.Favourites, "42")
	require.NoError(t, err)
	assert.Equal(t, []string{}, items)

	_, err = store.Add(ctx, "ghost", collection.History, "1")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = store.List(ctx, "u-1", collection.Kind("wishlist"))
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	assert.ErrorContains(t, apperr.As(err).Cause, `"wishlist"`)
	assert.ErrorIs(t, err, collection.ErrUnknownKind)
}

/*
TestStore_ReturnsCopies verifies callers cannot mutate stored state.
*/
func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store, "u-1", "alice")

	items, err := store.Add(ctx, "u-1", collection.History, "a")
	require.NoError(t, err)
	items[0] = "tampered"

	stored, err := store.List(ctx, "u-1", collection.History)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, stored)
}

/*
TestStore_ConcurrentAdds verifies that concurrent adds neither lose updates
nor create duplicates.
*/
func TestStore_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	seed(t, store, "u-1", "alice")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = store.Add(ctx, "u-1", collection.Favourites, fmt.Sprintf("item-%d", n))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.Add(ctx, "u-1", collection.Favourites, "shared")
		}()
	}
	wg.Wait()

	items, err := store.List(ctx, "u-1", collection.Favourites)
	require.NoError(t, err)
	assert.Len(t, items, 51)
	assert.Contains(t, items, "shared")
}
