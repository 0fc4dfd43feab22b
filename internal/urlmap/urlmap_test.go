// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package urlmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/migrationboard/internal/urlmap"
)

func sampleEntries() []urlmap.Entry {
	return []urlmap.Entry{
		{OldURL: "/producten/show/2755", NewURL: "/product/antieke-globe-wernicke/", Type: urlmap.TypeProduct, ArticleNumber: "2755"},
		{OldURL: "/klokken/wandklokken", NewURL: "/producten/klokken/wandklokken/", Type: urlmap.TypeSubcategory},
		{OldURL: "/klokken/wandklokken/pagina/2", NewURL: "/producten/klokken/wandklokken/", Type: urlmap.TypePagination},
		{OldURL: "/verlichting", NewURL: "/producten/", Type: urlmap.TypeDropped},
		{OldURL: "/meubels", NewURL: "/producten/meubels/", Type: urlmap.TypeCategory},
		{OldURL: "/producten/show/2755", NewURL: "/product/antieke-globe-wernicke/", Type: urlmap.TypeProduct, ArticleNumber: "2755"},
	}
}

/*
TestFilter covers the type filter, the "all" sentinel and the
case-insensitive search over both URL columns.
*/
func TestFilter(t *testing.T) {
	entries := sampleEntries()

	tests := []struct {
		name   string
		filter urlmap.URLFilter
		want   int
	}{
		{"empty_filter_admits_all", urlmap.URLFilter{}, 6},
		{"all_sentinel", urlmap.URLFilter{Type: "all"}, 6},
		{"by_type", urlmap.URLFilter{Type: urlmap.TypeProduct}, 2},
		{"search_old_url", urlmap.URLFilter{Search: "PAGINA"}, 1},
		{"search_new_url", urlmap.URLFilter{Search: "globe-wernicke"}, 2},
		{"type_and_search", urlmap.URLFilter{Type: urlmap.TypeSubcategory, Search: "wandklokken"}, 1},
		{"no_match", urlmap.URLFilter{Type: urlmap.TypeDropped, Search: "klokken"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := urlmap.Filter(entries, tt.filter)
			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestCountByType(t *testing.T) {
	counts := urlmap.CountByType(sampleEntries())

	assert.Equal(t, map[urlmap.Type]int{
		urlmap.TypeProduct:     2,
		urlmap.TypeSubcategory: 1,
		urlmap.TypePagination:  1,
		urlmap.TypeDropped:     1,
		urlmap.TypeCategory:    1,
	}, counts)
}

/*
TestGroupByType orders known types first and appends unknown types in order
of first appearance, skipping empty groups.
*/
func TestGroupByType(t *testing.T) {
	entries := append([]urlmap.Entry{{OldURL: "/x", Type: "legacy"}}, sampleEntries()...)

	groups := urlmap.GroupByType(entries)

	got := make([]urlmap.Type, 0, len(groups))
	for _, group := range groups {
		got = append(got, group.Type)
	}
	assert.Equal(t, []urlmap.Type{
		urlmap.TypeProduct, urlmap.TypeSubcategory, urlmap.TypePagination, urlmap.TypeDropped,
		"legacy", urlmap.TypeCategory,
	}, got)

	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "2755", groups[0].Entries[0].ArticleNumber)

	assert.Empty(t, urlmap.GroupByType(nil))
}

func TestType_Label(t *testing.T) {
	assert.Equal(t, "Subcategory", urlmap.TypeSubcategory.Label())
	assert.Equal(t, "legacy", urlmap.Type("legacy").Label())
}
