// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package memstore is an in-process account store.

It satisfies both [auth.UserRepository] and [collection.Repository] and keeps
the same guarantees as the PostgreSQL store (unique user names, set semantics,
atomic per-record updates) behind a single mutex. Data is lost on restart.
*/
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/users/auth"
	"github.com/taibuivan/userapi/internal/users/collection"
)

var (
	_ auth.UserRepository   = (*Store)(nil)
	_ collection.Repository = (*Store)(nil)
)

// Store holds accounts keyed by id, with a secondary user-name index.
type Store struct {
	mu     sync.RWMutex
	byID   map[string]*auth.User
	byName map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		byID:   make(map[string]*auth.User),
		byName: make(map[string]string),
	}
}

// # auth.UserRepository

// Create stores a copy of user. The user name must not be taken.
func (store *Store) Create(_ context.Context, user *auth.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, taken := store.byName[user.UserName]; taken {
		return apperr.Conflict(auth.MsgUserNameTaken)
	}

	stored := clone(user)
	store.byID[stored.ID] = stored
	store.byName[stored.UserName] = stored.ID
	return nil
}

// FindByUserName returns a copy of the account with the given user name.
func (store *Store) FindByUserName(_ context.Context, userName string) (*auth.User, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	id, ok := store.byName[userName]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return clone(store.byID[id]), nil
}

// # collection.Repository

// List returns a copy of the collection.
func (store *Store) List(_ context.Context, userID string, kind collection.Kind) ([]string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	items, err := store.items(userID, kind)
	if err != nil {
		return nil, err
	}
	return cloneItems(*items), nil
}

// Add appends itemID unless already present.
func (store *Store) Add(_ context.Context, userID string, kind collection.Kind, itemID string) ([]string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	items, err := store.items(userID, kind)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(*items, itemID) {
		*items = append(*items, itemID)
	}
	return cloneItems(*items), nil
}

// Remove deletes itemID if present.
func (store *Store) Remove(_ context.Context, userID string, kind collection.Kind, itemID string) ([]string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	items, err := store.items(userID, kind)
	if err != nil {
		return nil, err
	}

	*items = slices.DeleteFunc(*items, func(member string) bool { return member == itemID })
	return cloneItems(*items), nil
}

// items locates the backing slice. Callers hold the lock.
func (store *Store) items(userID string, kind collection.Kind) (*[]string, error) {
	user, ok := store.byID[userID]
	if !ok {
		return nil, apperr.NotFound("User")
	}

	switch kind {
	case collection.Favourites:
		return &user.Favourites, nil
	case collection.History:
		return &user.History, nil
	default:
		return nil, apperr.Internal(collection.UnknownKind(kind))
	}
}

func clone(user *auth.User) *auth.User {
	copied := *user
	copied.Favourites = cloneItems(user.Favourites)
	copied.History = cloneItems(user.History)
	return &copied
}

func cloneItems(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}
