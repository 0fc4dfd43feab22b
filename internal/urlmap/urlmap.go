// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package urlmap models the legacy-to-new URL redirect list and the filters
// the dashboard and the report apply to it.
package urlmap

import (
	"slices"
	"strings"

	"github.com/taibuivan/migrationboard/pkg/slice"
)

// Type classifies a redirect row.
type Type string

const (
	TypeProduct     Type = "product"
	TypeSubcategory Type = "subcategory"
	TypePagination  Type = "pagination"
	TypeDropped     Type = "dropped"

	// TypeCategory only appears in fixtures from the flat schema generation.
	TypeCategory Type = "category"
)

// KnownTypes is the display order of the redirect types.
var KnownTypes = []Type{TypeProduct, TypeSubcategory, TypePagination, TypeDropped}

// Label is the human-readable name of a type.
func (t Type) Label() string {
	switch t {
	case TypeProduct:
		return "Product"
	case TypeSubcategory:
		return "Subcategory"
	case TypePagination:
		return "Pagination"
	case TypeDropped:
		return "Dropped"
	case TypeCategory:
		return "Category"
	}
	return string(t)
}

// Entry is one 301 redirect from the legacy site to the new one.
type Entry struct {
	OldURL        string `json:"old_url"`
	NewURL        string `json:"new_url"`
	Type          Type   `json:"type"`
	ArticleNumber string `json:"article_number,omitempty"`
	Status        string `json:"status,omitempty"`
}

// # Filtering

// URLFilter narrows the URL list. An empty Type or "all" admits every row.
type URLFilter struct {
	Type   Type   `json:"type"`
	Search string `json:"search"`
}

// AllTypes reports whether the filter admits every type.
func (f URLFilter) AllTypes() bool {
	return f.Type == "" || f.Type == "all"
}

// Filter returns the entries matching f in input order. Search is a
// case-insensitive substring of the old or the new URL.
func Filter(entries []Entry, f URLFilter) []Entry {
	query := strings.ToLower(f.Search)

	return slice.Filter(entries, func(entry Entry) bool {
		if !f.AllTypes() && entry.Type != f.Type {
			return false
		}
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(entry.OldURL), query) ||
			strings.Contains(strings.ToLower(entry.NewURL), query)
	})
}

// CountByType counts the entries of each type.
func CountByType(entries []Entry) map[Type]int {
	counts := make(map[Type]int, len(KnownTypes))
	for _, entry := range entries {
		counts[entry.Type]++
	}
	return counts
}

// Group is the partition of the URL list for one type.
type Group struct {
	Type    Type    `json:"type"`
	Entries []Entry `json:"entries"`
}

// GroupByType partitions entries by type. Known types come first in
// [KnownTypes] order, followed by any other type in order of first
// appearance. Types with no entries are omitted. Entry order is preserved
// within each group.
func GroupByType(entries []Entry) []Group {
	buckets := make(map[Type][]Entry)
	var unknown []Type

	for _, entry := range entries {
		if _, seen := buckets[entry.Type]; !seen && !slices.Contains(KnownTypes, entry.Type) {
			unknown = append(unknown, entry.Type)
		}
		buckets[entry.Type] = append(buckets[entry.Type], entry)
	}

	order := append(append([]Type{}, KnownTypes...), unknown...)
	groups := make([]Group, 0, len(order))
	for _, t := range order {
		if rows := buckets[t]; len(rows) > 0 {
			groups = append(groups, Group{Type: t, Entries: rows})
		}
	}
	return groups
}

// OfType returns the entries of a single type.
func OfType(entries []Entry, t Type) []Entry {
	return Filter(entries, URLFilter{Type: t})
}
