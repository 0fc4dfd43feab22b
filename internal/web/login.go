// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/taibuivan/migrationboard/internal/platform/apperr"
	requestutil "github.com/taibuivan/migrationboard/internal/platform/request"
)

type loginPage struct {
	Next  string
	Error string
}

/* GET /login */
func (handler *Handler) loginPage(writer http.ResponseWriter, request *http.Request) {
	next := handler.safeNext(request.URL.Query().Get("next"))

	if requestutil.IsAuthenticated(request) {
		http.Redirect(writer, request, next, http.StatusSeeOther)
		return
	}

	handler.render(writer, request, http.StatusOK, "login", "Sign in", loginPage{Next: next})
}

/*
POST /login.

Form:
  - password: the shared dashboard password
  - next: where to go after signing in

A wrong password re-renders the form with HTTP 401. A server without a
configured password answers 503.
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		handler.render(writer, request, http.StatusBadRequest, "login", "Sign in", loginPage{
			Next:  handler.path("/"),
			Error: "Invalid form submission.",
		})
		return
	}

	next := handler.safeNext(request.PostForm.Get("next"))
	password := request.PostForm.Get("password")

	if password == "" {
		handler.render(writer, request, http.StatusBadRequest, "login", "Sign in", loginPage{
			Next:  next,
			Error: "Password is required.",
		})
		return
	}

	session, err := handler.deps.Auth.Login(request.Context(), password)
	if err != nil {
		status, message := http.StatusInternalServerError, "Something went wrong. Please try again."
		var appError *apperr.AppError
		if errors.As(err, &appError) {
			status, message = appError.HTTPStatus, appError.Message
		}
		handler.render(writer, request, status, "login", "Sign in", loginPage{Next: next, Error: message})
		return
	}

	handler.deps.Cookies.Set(writer, session)
	http.Redirect(writer, request, next, http.StatusSeeOther)
}

/* POST /logout */
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.deps.Cookies.Clear(writer)
	http.Redirect(writer, request, handler.path("/login"), http.StatusSeeOther)
}

// safeNext keeps a post-login target only when it points inside the
// dashboard. Anything else, including protocol-relative "//host" URLs, falls
// back to the dashboard root.
func (handler *Handler) safeNext(next string) string {
	home := handler.path("/")
	if next == "" || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return home
	}

	base := handler.deps.BasePath
	if next == base || strings.HasPrefix(next, base+"/") {
		if strings.HasPrefix(next, handler.path("/login")) {
			return home
		}
		return next
	}
	return home
}
