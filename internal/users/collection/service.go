// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"log/slog"

	"github.com/taibuivan/userapi/internal/platform/apperr"
	"github.com/taibuivan/userapi/internal/platform/ctxutil"
	"github.com/taibuivan/userapi/internal/platform/validate"
)

// # Service Layer

// Service applies set operations to a user's collections.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// List returns the collection of kind owned by userID.
func (service *Service) List(context context.Context, userID string, kind Kind) ([]string, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return service.repository.List(context, userID, kind)
}

/*
Add inserts itemID into the collection and returns the result.

Adding an existing member returns the collection unchanged.
*/
func (service *Service) Add(context context.Context, userID string, kind Kind, itemID string) ([]string, error) {
	if err := checkInput(kind, itemID); err != nil {
		return nil, err
	}

	items, err := service.repository.Add(context, userID, kind, itemID)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).DebugContext(context, "collection_item_added",
		slog.String("user_id", userID),
		slog.String("kind", string(kind)),
		slog.Int("size", len(items)),
	)
	return items, nil
}

/*
Remove deletes itemID from the collection and returns the result.

Removing a non-member returns the collection unchanged.
*/
func (service *Service) Remove(context context.Context, userID string, kind Kind, itemID string) ([]string, error) {
	if err := checkInput(kind, itemID); err != nil {
		return nil, err
	}

	items, err := service.repository.Remove(context, userID, kind, itemID)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).DebugContext(context, "collection_item_removed",
		slog.String("user_id", userID),
		slog.String("kind", string(kind)),
		slog.Int("size", len(items)),
	)
	return items, nil
}

func checkKind(kind Kind) error {
	if !kind.Valid() {
		return apperr.Internal(UnknownKind(kind))
	}
	return nil
}

func checkInput(kind Kind, itemID string) error {
	if err := checkKind(kind); err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.Required(FieldItemID, itemID).
		MaxLen(FieldItemID, itemID, MaxItemIDLength)
	return validator.Err()
}
