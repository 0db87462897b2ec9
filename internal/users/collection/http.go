// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/userapi/internal/platform/request"
	"github.com/taibuivan/userapi/internal/platform/respond"
)

// Handler serves one collection kind for the authenticated user.
//
// It must be mounted behind the Authenticate middleware; the owner is always
// the token's subject, never a path or body parameter.
type Handler struct {
	collectionService *Service
	kind              Kind
}

// NewHandler constructs a [Handler] bound to kind.
func NewHandler(service *Service, kind Kind) *Handler {
	return &Handler{collectionService: service, kind: kind}
}

// Routes returns a [chi.Router] for the collection.
//
// # Endpoints
//   - GET    /     : The whole collection.
//   - PUT    /{id} : Add an item.
//   - DELETE /{id} : Remove an item.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Put("/{id}", handler.add)
	router.Delete("/{id}", handler.remove)

	return router
}

/*
GET /api/user/{favourites|history}

Response:
  - 200: ["itemId", ...]
  - 422: {"error"}: user no longer exists
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.collectionService.List(request.Context(), userID, handler.kind)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

/*
PUT /api/user/{favourites|history}/{id}

Response:
  - 200: the collection after the add
  - 422: {"error"}: invalid id or user no longer exists
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	handler.mutate(writer, request, handler.collectionService.Add)
}

/*
DELETE /api/user/{favourites|history}/{id}

Response:
  - 200: the collection after the removal
  - 422: {"error"}: invalid id or user no longer exists
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	handler.mutate(writer, request, handler.collectionService.Remove)
}

type mutation func(ctx context.Context, userID string, kind Kind, itemID string) ([]string, error)

func (handler *Handler) mutate(writer http.ResponseWriter, request *http.Request, apply mutation) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	itemID, err := requestutil.Param(request, FieldItemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := apply(request.Context(), userID, handler.kind, itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}
