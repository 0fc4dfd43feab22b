// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides the cryptographic primitives behind the dashboard's
// password gate: bcrypt password hashes and signed session tokens.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the auth domain. The auth service and the session middleware depend on it;
// it depends on nothing in the application.
package sec

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/migrationboard/pkg/uuid"
)

// ErrEmptySecret is returned when no signing secret is configured.
var ErrEmptySecret = errors.New("sec: session secret is empty")

// SessionClaims is the payload of a dashboard session cookie.
//
// The dashboard has one shared password and no user accounts, so the only
// custom claim is the catalog the session was opened for.
type SessionClaims struct {
	jwt.RegisteredClaims

	Catalog string `json:"cat"`
}

// SessionTokens issues and verifies HS256 session tokens.
type SessionTokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionTokens creates a token service for one catalog.
func NewSessionTokens(secret, issuer string, ttl time.Duration) (*SessionTokens, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	return &SessionTokens{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// RandomSecret returns a 256-bit hex secret. Tokens signed with it do not
// survive a restart.
func RandomSecret() (string, error) {
	buffer := make([]byte, 32)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buffer), nil
}

// TTL is the lifetime of issued tokens.
func (service *SessionTokens) TTL() time.Duration {
	return service.ttl
}

// Issue signs a new session token for catalog.
func (service *SessionTokens) Issue(catalog string) (string, time.Time, error) {
	issuedAt := service.now()
	expiresAt := issuedAt.Add(service.ttl)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New(),
			Subject:   catalog,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Catalog: catalog,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sec: failed to sign session: %w", err)
	}

	return signedToken, expiresAt, nil
}

// VerifySession checks the signature, issuer and expiry of a session token.
func (service *SessionTokens) VerifySession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return service.secret, nil
		},
		jwt.WithIssuer(service.issuer),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return nil, fmt.Errorf("sec: invalid session: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid session claims")
	}

	return claims, nil
}
