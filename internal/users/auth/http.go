// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/userapi/internal/platform/request"
	"github.com/taibuivan/userapi/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the public registration and login endpoints.
//
// Errors on these routes are written with [respond.Failure] so the body
// carries a "message" field, like their success responses.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /register : Creates a new account.
//   - POST /login    : Authenticates and returns a token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	return router
}

// # Request Payloads

type registerRequest struct {
	UserName  string `json:"userName"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

/*
register handles the creation of a new user account.

POST /api/user/register

Response:
  - 200: {"message": "User <userName> successfully registered"}
  - 422: {"message", "code"}: invalid input or user name taken
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Failure(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		UserName:  input.UserName,
		Password:  input.Password,
		Password2: input.Password2,
	})
	if err != nil {
		respond.Failure(writer, request, err)
		return
	}

	respond.Message(writer, RegisteredMessage(user))
}

/*
login authenticates a user and issues a token.

POST /api/user/login

Response:
  - 200: {"message": "login successful", "token": "<jwt>"}
  - 422: {"message", "code"}: bad credentials
  - 429: {"message", "code"}: too many failed attempts
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Failure(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), LoginInput{
		UserName: input.UserName,
		Password: input.Password,
	})
	if err != nil {
		respond.Failure(writer, request, err)
		return
	}

	respond.OK(writer, loginResponse{
		Message: MsgLoginSuccessful,
		Token:   result.Token,
	})
}
