// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/migrationboard/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/migrationboard/internal/platform/request"
	"github.com/taibuivan/migrationboard/internal/platform/respond"
	"github.com/taibuivan/migrationboard/internal/platform/validate"
)

// Handler exposes the password gate to API clients.
type Handler struct {
	service *Service
	cookies *Cookies
}

// NewHandler constructs an auth [Handler].
func NewHandler(service *Service, cookies *Cookies) *Handler {
	return &Handler{service: service, cookies: cookies}
}

// RegisterRoutes mounts the session endpoints. They must stay outside the
// session gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/session", handler.getSession)
	router.Post("/session", handler.createSession)
	router.Delete("/session", handler.deleteSession)
}

type createSessionRequest struct {
	Password string `json:"password"`
}

/*
POST /api/v1/session.

Request:
  - password: string

Response:
  - 200: {expires_at}, session cookie set
  - 400: password missing
  - 401: incorrect password
  - 503: no password configured on the server
*/
func (handler *Handler) createSession(writer http.ResponseWriter, request *http.Request) {
	var input createSessionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.Required("password", input.Password).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.cookies.Set(writer, session)
	respond.OK(writer, session)
}

/*
GET /api/v1/session.

Response:
  - 200: {authenticated, expires_at?}
*/
func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	claims := ctxutil.GetSession(request.Context())
	if claims == nil {
		respond.OK(writer, map[string]any{"authenticated": false})
		return
	}

	respond.OK(writer, map[string]any{
		"authenticated": true,
		"expires_at":    claims.ExpiresAt.Time,
	})
}

// deleteSession handles DELETE /api/v1/session.
func (handler *Handler) deleteSession(writer http.ResponseWriter, _ *http.Request) {
	handler.cookies.Clear(writer)
	respond.NoContent(writer)
}
