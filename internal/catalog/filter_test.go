// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/migrationboard/internal/catalog"
)

func enriched(articleNumber, price string, description catalog.MultiLang) catalog.EnrichedProduct {
	return catalog.EnrichedProduct{
		Product: catalog.Product{
			ArticleNumber: articleNumber,
			Price:         price,
			Name:          ml("Oak table "+articleNumber, "Eiken tafel", "Eichentisch"),
			Description:   description,
		},
		CategorySlug:    "furniture",
		SubcategorySlug: "tables",
	}
}

/*
TestPriceClassification checks the boundary cases of both price predicates.
*/
func TestPriceClassification(t *testing.T) {
	tests := []struct {
		price        string
		missing      bool
		callForPrice bool
		label        string
	}{
		{"Bel ons voor prijs", false, true, "Call for price"},
		{"€0", true, false, "No price"},
		{"€ 1.250", false, false, "€ 1.250"},
		{"€", true, false, "No price"},
		{"", true, false, "No price"},
		{"   ", true, false, "No price"},
		{" €0 ", true, false, "No price"},
		{"BEL ONS", false, true, "Call for price"},
		{"€ 0,00", false, false, "€ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			product := enriched("1", tt.price, ml("text", "", ""))

			assert.Equal(t, tt.missing, catalog.IsMissingPrice(product))
			assert.Equal(t, tt.callForPrice, catalog.IsCallForPrice(product))
			assert.Equal(t, !tt.missing && !tt.callForPrice, catalog.HasPrice(product))
			assert.Equal(t, tt.label, catalog.PriceBadge(product).Label)
		})
	}
}

func TestIsMissingDescription(t *testing.T) {
	assert.True(t, catalog.IsMissingDescription(enriched("1", "€ 5", ml("", " ", "\n"))))
	assert.False(t, catalog.IsMissingDescription(enriched("1", "€ 5", ml("", "", "Text"))))
}

func TestQualityFlags(t *testing.T) {
	flags := catalog.QualityFlags(enriched("1", "€", catalog.MultiLang{}))
	assert.Equal(t, []catalog.Badge{
		{Label: "No price", Kind: catalog.BadgeMissingPrice},
		{Label: "No description", Kind: catalog.BadgeMissingDescription},
	}, flags)

	flags = catalog.QualityFlags(enriched("2", "Bel ons", ml("Text", "", "")))
	assert.Equal(t, []catalog.Badge{{Label: "Call for price", Kind: catalog.BadgeCallForPrice}}, flags)

	assert.Empty(t, catalog.QualityFlags(enriched("3", "€ 450", ml("Text", "", ""))))
}

/*
TestFilterProducts_AndComposition keeps a product that satisfies every active
flag and drops it when a flag it fails is active.
*/
func TestFilterProducts_AndComposition(t *testing.T) {
	target := enriched("2755", "€", catalog.MultiLang{})
	products := []catalog.EnrichedProduct{
		target,
		enriched("2756", "€", ml("Described", "", "")),
		enriched("2757", "Bel ons", catalog.MultiLang{}),
	}

	both := catalog.FilterProducts(products, catalog.ProductFilters{
		ShowMissingPrice:       true,
		ShowMissingDescription: true,
	})
	assert.Equal(t, []catalog.EnrichedProduct{target}, both)

	callOnly := catalog.FilterProducts([]catalog.EnrichedProduct{target}, catalog.ProductFilters{
		ShowCallForPrice: true,
	})
	assert.Empty(t, callOnly)

	contradictory := catalog.FilterProducts(products, catalog.ProductFilters{
		ShowMissingPrice: true,
		ShowCallForPrice: true,
	})
	assert.Empty(t, contradictory)
}

func TestFilterProducts_SearchAndCategory(t *testing.T) {
	index := catalog.BuildIndex(sampleTree())

	tests := []struct {
		name    string
		filters catalog.ProductFilters
		want    []string
	}{
		{"no_filters", catalog.ProductFilters{}, []string{"2755", "2756", "3001", "4100"}},
		{"english_name", catalog.ProductFilters{Search: "GLOBE"}, []string{"2755"}},
		{"dutch_name", catalog.ProductFilters{Search: "oak cabinet (nl)"}, []string{"3001"}},
		{"article_number", catalog.ProductFilters{Search: "410"}, []string{"4100"}},
		{"category", catalog.ProductFilters{CategorySlug: "antique-clocks-watches"}, []string{"2755", "2756"}},
		{"search_and_category", catalog.ProductFilters{Search: "clock", CategorySlug: "furniture"}, []string{}},
		{"category_and_missing_price", catalog.ProductFilters{CategorySlug: "lamps", ShowMissingPrice: true}, []string{"4100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, p := range catalog.FilterProducts(index.Products(), tt.filters) {
				got = append(got, p.ArticleNumber)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
