// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"github.com/taibuivan/migrationboard/internal/catalog"
)

// SampleProduct is a product shown with its translations, labelled with the
// Dutch name of the category it was found in.
type SampleProduct struct {
	Product  catalog.Product `json:"product"`
	Category string          `json:"category"`
}

// SampleProducts returns the first limit products of the category tree in
// traversal order. Duplicated article numbers are not skipped.
func SampleProducts(categories []catalog.CleanCategory, limit int) []SampleProduct {
	samples := make([]SampleProduct, 0, max(limit, 0))
	for _, category := range categories {
		for _, subcategory := range category.Subcategories {
			for _, product := range subcategory.Products {
				if len(samples) >= limit {
					return samples
				}
				samples = append(samples, SampleProduct{Product: product, Category: category.Name.NL})
			}
		}
	}
	return samples
}

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Truncate cuts text to at most limit characters and appends [Ellipsis]
// when anything was cut.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + Ellipsis
}

// # URL Structure

// URLPattern is one before/after example of the URL scheme change.
type URLPattern struct {
	Label       string `json:"label"`
	Old         string `json:"old"`
	New         string `json:"new"`
	Removed     bool   `json:"removed"`
	Description string `json:"description"`
}

// URLPatterns are the three structural changes of the migration.
var URLPatterns = []URLPattern{
	{
		Label:       "Products",
		Old:         "/producten/show/2755",
		New:         "/product/antieke-globe-wernicke/",
		Description: "Numeric IDs replaced with SEO-friendly, descriptive slugs based on product names.",
	},
	{
		Label:       "Categories",
		Old:         "/{categorie}/{subcategorie}",
		New:         "/producten/{categorie}/{subcategorie}/",
		Description: "All categories nested under /producten/ with consistent trailing slashes.",
	},
	{
		Label:       "Pagination",
		Old:         "/{cat}/{sub}/pagina/2",
		New:         "Removed",
		Removed:     true,
		Description: "Server-side pagination pages removed. Pagination is now handled client-side with JavaScript, eliminating duplicate content issues.",
	},
}
