// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package auth implements the dashboard's single shared-password gate.
//
// # Flow
//
// The configured password is bcrypt-hashed once at startup. A correct
// password opens a session: a signed token stored in an http-only cookie
// scoped to the dashboard's base path. There are no user accounts, no
// lockout and no rate limit on password attempts.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/migrationboard/internal/platform/apperr"
	"github.com/taibuivan/migrationboard/internal/platform/ctxutil"
	"github.com/taibuivan/migrationboard/internal/platform/sec"
)

var (
	// ErrNotConfigured means the server has no dashboard password.
	ErrNotConfigured = apperr.ServiceUnavailable("Password not configured on server.")

	// ErrIncorrectPassword means the submitted password does not match.
	ErrIncorrectPassword = apperr.Unauthorized("Incorrect password.")
)

// Session is an opened dashboard session.
type Session struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service verifies the shared password and opens sessions.
type Service struct {
	passwordHash string
	tokens       *sec.SessionTokens
	catalog      string
	logger       *slog.Logger
}

// NewService hashes password and constructs the gate for catalog. An empty
// password yields a gate that rejects every attempt with [ErrNotConfigured].
func NewService(password string, tokens *sec.SessionTokens, catalog string, logger *slog.Logger) (*Service, error) {
	service := &Service{tokens: tokens, catalog: catalog, logger: logger}

	if password != "" {
		hash, err := sec.HashPassword(password)
		if err != nil {
			return nil, err
		}
		service.passwordHash = hash
	}

	return service, nil
}

// Configured reports whether a password is set.
func (service *Service) Configured() bool {
	return service.passwordHash != ""
}

// Verify checks secret against the configured password.
func (service *Service) Verify(ctx context.Context, secret string) error {
	logger := ctxutil.GetLoggerOr(ctx, service.logger)

	if !service.Configured() {
		logger.ErrorContext(ctx, "login_rejected_not_configured")
		return ErrNotConfigured
	}

	if !sec.CheckPasswordHash(secret, service.passwordHash) {
		logger.InfoContext(ctx, "login_rejected_incorrect_password")
		return ErrIncorrectPassword
	}

	return nil
}

// Login verifies secret and issues a session token.
func (service *Service) Login(ctx context.Context, secret string) (*Session, error) {
	if err := service.Verify(ctx, secret); err != nil {
		return nil, err
	}

	token, expiresAt, err := service.tokens.Issue(service.catalog)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	ctxutil.GetLoggerOr(ctx, service.logger).InfoContext(ctx, "login_succeeded",
		slog.Time("expires_at", expiresAt),
	)

	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}
