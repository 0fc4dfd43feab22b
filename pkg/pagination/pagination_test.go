// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/migrationboard/pkg/pagination"
)

/*
TestFromRequest verifies parsing and clamping of query parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 50}},
		{"explicit", "?page=3&limit=10", pagination.Params{Page: 3, Limit: 10}},
		{"negative_page", "?page=-2", pagination.Params{Page: 1, Limit: 50}},
		{"garbage", "?page=abc&limit=xyz", pagination.Params{Page: 1, Limit: 50}},
		{"limit_too_large", "?limit=100000", pagination.Params{Page: 1, Limit: 50}},
		{"huge_page", "?page=368934881474191033", pagination.Params{Page: 368934881474191033, Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/products"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

/*
TestWindow slices items and reports metadata for every page position.
*/
func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, meta := pagination.Window(items, pagination.Params{Page: 1, Limit: 3})
	assert.Equal(t, []int{1, 2, 3}, page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.False(t, meta.HasPrev())
	assert.True(t, meta.HasNext())
	assert.Equal(t, 1, meta.From())
	assert.Equal(t, 3, meta.To())

	page, meta = pagination.Window(items, pagination.Params{Page: 3, Limit: 3})
	assert.Equal(t, []int{7}, page)
	assert.True(t, meta.HasPrev())
	assert.False(t, meta.HasNext())
	assert.Equal(t, 7, meta.From())
	assert.Equal(t, 7, meta.To())

	page, meta = pagination.Window(items, pagination.Params{Page: 9, Limit: 3})
	assert.Empty(t, page)
	assert.Equal(t, 7, meta.Total)
	assert.Equal(t, 0, meta.From())
	assert.Equal(t, 0, meta.To())
}

/*
TestWindow_PastEnd returns an empty window for pages beyond the last one,
including pages whose offset does not fit in an int.
*/
func TestWindow_PastEnd(t *testing.T) {
	items := []int{1, 2, 3}

	tests := []struct {
		name  string
		query string
	}{
		{"next_page", "?page=2&limit=50"},
		{"far_page", "?page=1000"},
		{"overflowing_page", "?page=368934881474191033&limit=50"},
		{"max_int_page", "?page=9223372036854775807&limit=500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/urls"+tt.query, nil))

			var (
				page []int
				meta pagination.Meta
			)
			assert.NotPanics(t, func() { page, meta = pagination.Window(items, params) })
			assert.Empty(t, page)
			assert.Equal(t, 3, meta.Total)
			assert.Equal(t, 1, meta.TotalPages)
			assert.True(t, meta.IsPastEnd())
			assert.Equal(t, 0, meta.From())
			assert.Equal(t, 0, meta.To())
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 50}.Offset())
	assert.Equal(t, 100, pagination.Params{Page: 3, Limit: 50}.Offset())
	assert.Equal(t, math.MaxInt, pagination.Params{Page: math.MaxInt, Limit: 2}.Offset())
}

/*
TestWindow_Empty keeps From/To at zero for empty lists.
*/
func TestWindow_Empty(t *testing.T) {
	page, meta := pagination.Window([]string{}, pagination.Params{Page: 1, Limit: 50})

	assert.Empty(t, page)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, 0, meta.From())
	assert.Equal(t, 0, meta.To())
}
