// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"time"
)

// Cookies writes the session cookie.
type Cookies struct {
	name   string
	path   string
	secure bool
	maxAge time.Duration
}

// NewCookies configures the session cookie. It is scoped to path, http-only,
// same-site lax, and Secure when secure is set.
func NewCookies(name, path string, secure bool, maxAge time.Duration) *Cookies {
	return &Cookies{name: name, path: path, secure: secure, maxAge: maxAge}
}

// Name is the cookie name.
func (cookies *Cookies) Name() string {
	return cookies.name
}

// Set stores session in the response.
func (cookies *Cookies) Set(writer http.ResponseWriter, session *Session) {
	http.SetCookie(writer, cookies.build(session.Token, int(cookies.maxAge.Seconds()), session.ExpiresAt))
}

// Clear removes the cookie from the browser.
func (cookies *Cookies) Clear(writer http.ResponseWriter) {
	http.SetCookie(writer, cookies.build("", -1, time.Unix(0, 0)))
}

func (cookies *Cookies) build(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     cookies.name,
		Value:    value,
		Path:     cookies.path,
		MaxAge:   maxAge,
		Expires:  expires.UTC(),
		HttpOnly: true,
		Secure:   cookies.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
