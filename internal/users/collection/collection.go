// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package collection manages the per-user item sets: favourites and history.

Each collection is a set of opaque item identifiers owned by one account.
Adding a member twice and removing a non-member both leave the set unchanged.
*/
package collection

import (
	"context"
	"errors"
	"fmt"
)

// # Domain Types

// Kind names one of the collections stored on an account.
type Kind string

const (
	Favourites Kind = "favourites"
	History    Kind = "history"
)

// Kinds lists every supported collection.
var Kinds = []Kind{Favourites, History}

// Valid reports whether k is a supported collection.
func (k Kind) Valid() bool {
	return k == Favourites || k == History
}

// # Field Identifiers

const (
	FieldItemID = "id"

	// MaxItemIDLength bounds an item identifier in characters.
	MaxItemIDLength = 255
)

// # Data Access

// Repository is the storage contract for collections.
//
// Add and Remove are single atomic operations on the stored record: two
// concurrent calls for the same user never lose each other's update. Every
// method returns the collection as stored afterwards, never nil, and an
// [apperr.AppError] with code NOT_FOUND when the user does not exist.
type Repository interface {
	List(context context.Context, userID string, kind Kind) ([]string, error)
	Add(context context.Context, userID string, kind Kind, itemID string) ([]string, error)
	Remove(context context.Context, userID string, kind Kind, itemID string) ([]string, error)
}

// ErrUnknownKind is the cause reported for a kind outside [Kinds].
var ErrUnknownKind = errors.New("collection: unknown kind")

// UnknownKind wraps [ErrUnknownKind] with the offending kind.
func UnknownKind(kind Kind) error {
	return fmt.Errorf("%w %q", ErrUnknownKind, string(kind))
}
