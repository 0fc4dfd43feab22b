// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Session: Cookie name, lifetime and token issuer.
  - Report: Page sizes, sample sizes and cache key taxonomy.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "migrationboard"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the
	// response. The PDF download is the slowest response.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds connecting to optional infrastructure and loading fixtures.
	StartupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Session

const (
	// SessionIssuer is the 'iss' claim of session tokens.
	SessionIssuer = "migrationboard"

	// SessionTTL is the lifetime of the session cookie and its token.
	SessionTTL = 7 * 24 * time.Hour
)

// # Pagination

const (
	// PageSize is the number of rows per page in URL and product tables.
	PageSize = 50

	// PreviewProducts is the number of products in the dashboard's language preview.
	PreviewProducts = 8
)

// # Report

const (
	// ReportSampleProducts is the number of products on the multilingual report page.
	ReportSampleProducts = 6

	// ReportDescriptionLimit is the maximum description length on the sample page.
	ReportDescriptionLimit = 150

	// ReportFileSuffix completes the download name "<catalog>-migration-report.pdf".
	ReportFileSuffix = "-migration-report.pdf"

	// ReportLanguages is the number of content languages reported.
	ReportLanguages = 3
)

// # HTTP Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderAcceptLanguage = "Accept-Language"
)

// # JSON Field Identifiers

const (
	FieldError  = "error"
	FieldCode   = "code"
	FieldStatus = "status"
	FieldApp    = "app"
	FieldChecks = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixReport = "report:pdf:"
)
