// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"net/url"

	"github.com/taibuivan/migrationboard/internal/platform/apperr"
	"github.com/taibuivan/migrationboard/internal/platform/ctxutil"
	"github.com/taibuivan/migrationboard/internal/platform/respond"
	"github.com/taibuivan/migrationboard/internal/platform/sec"
)

// SessionVerifier verifies the value of a session cookie.
//
// Defining it here decouples the middleware from [sec.SessionTokens], so tests
// can inject a stub.
type SessionVerifier interface {
	VerifySession(token string) (*sec.SessionClaims, error)
}

// Authenticate reads the session cookie and verifies it.
//
// # Flow
//  1. No cookie: the request proceeds as anonymous.
//  2. Invalid or expired cookie: the request proceeds as anonymous as well,
//     so the gate re-prompts for the password.
//  3. Valid cookie: [*sec.SessionClaims] are injected into the context.
func Authenticate(verifier SessionVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifySession(cookie.Value)
			if err != nil {
				ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "session_rejected")
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithSession(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks anonymous API requests with HTTP 401.
//
// Must be registered in the router AFTER [Authenticate].
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetSession(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireSessionRedirect sends anonymous page requests to the login page,
// remembering where they were going in the "next" parameter.
//
// Must be registered in the router AFTER [Authenticate].
func RequireSessionRedirect(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if ctxutil.GetSession(request.Context()) != nil {
				next.ServeHTTP(writer, request)
				return
			}

			target := loginPath + "?next=" + url.QueryEscape(request.URL.RequestURI())
			http.Redirect(writer, request, target, http.StatusSeeOther)
		})
	}
}
