// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for paged lists.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered to JSON clients and HTML views.
// All lists in this service are in memory, so paging is a slice window.
package pagination

import (
	"math"
	"net/http"

	"github.com/taibuivan/migrationboard/pkg/convert"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 50
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 500
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the index of the first item of [Page]. It saturates at
// [math.MaxInt] instead of overflowing for very large pages.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// HasPrev reports whether a previous page exists.
func (m Meta) HasPrev() bool { return m.Page > 1 }

// HasNext reports whether a following page exists.
func (m Meta) HasNext() bool { return m.Page < m.TotalPages }

// IsPastEnd reports whether the page holds no items because it lies beyond
// the last page.
func (m Meta) IsPastEnd() bool { return m.Page > m.TotalPages }

// From is the 1-indexed position of the first item on the page (0 when empty).
func (m Meta) From() int {
	if m.Total == 0 || m.IsPastEnd() {
		return 0
	}
	return (m.Page-1)*m.Limit + 1
}

// To is the 1-indexed position of the last item on the page (0 when empty).
func (m Meta) To() int {
	if m.IsPastEnd() {
		return 0
	}
	return min(m.Page*m.Limit, m.Total)
}

// Window returns the items of the requested page together with its metadata.
// A page past the end yields an empty window, not an error.
func Window[T any](items []T, p Params) ([]T, Meta) {
	meta := NewMeta(p.Page, p.Limit, len(items))

	start := p.Offset()
	if start >= len(items) {
		return []T{}, meta
	}

	end := start + min(p.Limit, len(items)-start)
	return items[start:end], meta
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	return convert.ToIntD(r.URL.Query().Get(key), defaultVal)
}
