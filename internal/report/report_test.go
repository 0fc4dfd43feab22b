// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/fixture"
	"github.com/taibuivan/migrationboard/internal/report"
	"github.com/taibuivan/migrationboard/internal/urlmap"
)

func ml(nl, en, de string) catalog.MultiLang {
	return catalog.MultiLang{NL: nl, EN: en, DE: de}
}

func product(articleNumber, price string) catalog.Product {
	return catalog.Product{
		ArticleNumber: articleNumber,
		Price:         price,
		Name:          ml("Klok "+articleNumber, "Clock "+articleNumber, ""),
		Description:   ml("Beschrijving", "", ""),
	}
}

func category(nl, en string, subcategories ...catalog.CleanSubcategory) catalog.CleanCategory {
	return catalog.CleanCategory{Name: ml(nl, en, en), Subcategories: subcategories}
}

func subcategory(nl, en string, products ...catalog.Product) catalog.CleanSubcategory {
	return catalog.CleanSubcategory{Name: ml(nl, en, en), Products: products}
}

// sampleSnapshot maps Klokken onto itself, merges Meubels into Meubelen and
// drops Lampen. Article 2755 appears twice in the tree and twice in the URLs.
func sampleSnapshot() *fixture.Snapshot {
	return &fixture.Snapshot{
		URLs: []urlmap.Entry{
			{OldURL: "/producten/show/2755", NewURL: "/product/klok/", Type: urlmap.TypeProduct, ArticleNumber: "2755"},
			{OldURL: "/klokken/show/2755", NewURL: "/product/klok/", Type: urlmap.TypeProduct, ArticleNumber: "2755"},
			{OldURL: "/producten/show/3001", NewURL: "/product/kast/", Type: urlmap.TypeProduct, ArticleNumber: "3001"},
			{OldURL: "/producten/show/9000", NewURL: "/product/stoel/", Type: urlmap.TypeProduct, ArticleNumber: "9000"},
			{OldURL: "/producten/show/x", NewURL: "/product/x/", Type: urlmap.TypeProduct},
			{OldURL: "/klokken/wandklokken", NewURL: "/producten/klokken/wandklokken/", Type: urlmap.TypeSubcategory},
			{OldURL: "/klokken/wandklokken/pagina/2", NewURL: "/producten/klokken/wandklokken/", Type: urlmap.TypePagination},
			{OldURL: "/lampen", NewURL: "/producten/", Type: urlmap.TypeDropped},
		},
		Mappings: []catalog.CategoryMapping{
			{New: "Klokken", Old: []string{"Klokken"}, Subcategories: []catalog.SubcategoryMapping{{New: "Wandklokken", Old: []string{"Wandklokken", "Zakhorloges"}}}},
			{New: "Meubelen", Old: []string{"Meubels"}},
		},
		Categories: []catalog.CleanCategory{
			category("Klokken", "Clocks",
				subcategory("Wandklokken", "Wall Clocks", product("2755", "€ 1.250"), product("2756", "Bel ons")),
				subcategory("Zakhorloges", "Pocket Watches"),
			),
			category("Meubels", "Furniture",
				subcategory("Kasten", "Cabinets", product("2755", "€ 1.250"), product("3001", "€")),
			),
			category("Lampen", "Lamps",
				subcategory("Lampen", "Lamps", product("4100", "€0")),
			),
		},
		Fingerprint: strings.Repeat("ab", 32),
	}
}

/*
TestDroppedCategories returns exactly the clean categories no mapping lists.
*/
func TestDroppedCategories(t *testing.T) {
	snapshot := &fixture.Snapshot{
		Mappings: []catalog.CategoryMapping{{New: "Furniture", Old: []string{"Meubels"}}},
		Categories: []catalog.CleanCategory{
			category("Meubels", "Furniture"),
			category("Lampen", "Lamps"),
		},
	}

	assert.Equal(t, []string{"Lampen"}, report.DroppedCategories(snapshot))
	assert.Empty(t, report.DroppedCategories(&fixture.Snapshot{}))
}

/*
TestSummarize_UniqueProductsFromURLMapping counts unique products from the
URL mapping only. The catalog index de-duplicates the product tree on its own
and ends up with a different number for the same snapshot.
*/
func TestSummarize_UniqueProductsFromURLMapping(t *testing.T) {
	snapshot := sampleSnapshot()

	summary := report.Summarize(snapshot)
	indexed := len(catalog.BuildIndex(snapshot.Categories).Products())

	assert.Equal(t, 3, summary.UniqueProducts, "2755, 3001 and 9000; the empty article number is ignored")
	assert.Equal(t, 5, summary.ProductURLRows)
	assert.Equal(t, 4, indexed, "2755, 2756, 3001 and 4100")
	assert.NotEqual(t, summary.UniqueProducts, indexed)

	snapshot.Categories = nil
	assert.Equal(t, 3, report.Summarize(snapshot).UniqueProducts)
}

func TestSummarize(t *testing.T) {
	summary := report.Summarize(sampleSnapshot())

	assert.Equal(t, report.Summary{
		UniqueProducts:   3,
		ProductURLRows:   5,
		TreeProducts:     5,
		OldCategories:    3,
		NewCategories:    2,
		OldSubcategories: 4,
		NewSubcategories: 1,
		Redirects:        8,
		Languages:        3,
	}, summary)
	assert.Equal(t, 1, summary.DroppedCategoryCount())
	assert.Equal(t, 3, summary.ConsolidatedSubcategoryCount())

	assert.Zero(t, report.Summary{OldCategories: 2, NewCategories: 5}.DroppedCategoryCount())
}

func TestCategoryRows(t *testing.T) {
	rows := report.CategoryRows(sampleSnapshot())

	assert.Equal(t, []report.CategoryRow{
		{Status: report.StatusMatch, Old: []string{"Klokken"}, New: "Klokken", Products: 2, Subcategories: 1},
		{Status: report.StatusRenamed, Old: []string{"Meubels"}, New: "Meubelen", Products: 2, Subcategories: 0},
	}, rows)

	assert.Equal(t, []report.CategoryRow{
		{Status: report.StatusDropped, Old: []string{"Lampen"}, New: "/producten/", Products: 1, Subcategories: 1},
	}, report.DroppedRows(sampleSnapshot()))
}

/*
TestProductCountsByOldName keeps the last category when Dutch names repeat.
*/
func TestProductCountsByOldName(t *testing.T) {
	categories := []catalog.CleanCategory{
		category("Klokken", "Clocks", subcategory("A", "A", product("1", ""), product("2", ""))),
		category("Klokken", "Clocks 2", subcategory("B", "B", product("3", ""))),
	}

	assert.Equal(t, map[string]int{"Klokken": 1}, report.ProductCountsByOldName(categories))
	assert.Equal(t, map[string]int{"Klokken": 1}, report.SubcategoryCountsByOldName(categories))
}

func TestSampleProducts(t *testing.T) {
	samples := report.SampleProducts(sampleSnapshot().Categories, 4)

	require.Len(t, samples, 4)
	got := make([]string, 0, len(samples))
	for _, sample := range samples {
		got = append(got, sample.Category+"#"+sample.Product.ArticleNumber)
	}
	assert.Equal(t, []string{"Klokken#2755", "Klokken#2756", "Meubels#2755", "Meubels#3001"}, got)

	assert.Len(t, report.SampleProducts(sampleSnapshot().Categories, 50), 5)
	assert.Empty(t, report.SampleProducts(sampleSnapshot().Categories, 0))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 151)
	exact := strings.Repeat("b", 150)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"short", "Antieke klok", "Antieke klok"},
		{"exactly_limit", exact, exact},
		{"over_limit", long, strings.Repeat("a", 150) + "..."},
		{"counts_characters", strings.Repeat("ö", 151), strings.Repeat("ö", 150) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.Truncate(tt.text, 150))
		})
	}
}
