// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package report derives the migration statistics from the raw fixtures and
// renders them as the downloadable PDF migration report.
//
// # Independence from the index
//
// Everything here works on the [fixture.Snapshot] directly and never on the
// enriched catalog index. In particular the unique product count comes from
// the URL mapping, and can differ from the de-duplicated product list the
// catalog pages show. Both numbers are reported.
package report

import (
	"github.com/taibuivan/migrationboard/internal/fixture"
	"github.com/taibuivan/migrationboard/internal/platform/constants"
	"github.com/taibuivan/migrationboard/internal/urlmap"
	"github.com/taibuivan/migrationboard/pkg/slice"
)

// Summary holds the headline figures of the migration.
type Summary struct {
	// UniqueProducts is the number of distinct non-empty article numbers among
	// product URL rows.
	UniqueProducts int `json:"uniqueProducts"`
	// ProductURLRows counts product URL rows including duplicates.
	ProductURLRows int `json:"productUrlRows"`
	// TreeProducts is the raw number of products in the category tree,
	// duplicates included.
	TreeProducts int `json:"treeProducts"`

	OldCategories    int `json:"oldCategories"`
	NewCategories    int `json:"newCategories"`
	OldSubcategories int `json:"oldSubcategories"`
	NewSubcategories int `json:"newSubcategories"`

	Redirects int `json:"redirects"`
	Languages int `json:"languages"`
}

// Summarize computes the summary of a snapshot.
func Summarize(snapshot *fixture.Snapshot) Summary {
	productRows := urlmap.OfType(snapshot.URLs, urlmap.TypeProduct)
	articles := slice.Filter(productRows, func(entry urlmap.Entry) bool { return entry.ArticleNumber != "" })
	unique := slice.Unique(articles, func(entry urlmap.Entry) string { return entry.ArticleNumber })

	summary := Summary{
		UniqueProducts: len(unique),
		ProductURLRows: len(productRows),
		OldCategories:  len(snapshot.Categories),
		NewCategories:  len(snapshot.Mappings),
		Redirects:      len(snapshot.URLs),
		Languages:      constants.ReportLanguages,
	}

	for _, category := range snapshot.Categories {
		summary.OldSubcategories += len(category.Subcategories)
		for _, subcategory := range category.Subcategories {
			summary.TreeProducts += len(subcategory.Products)
		}
	}
	for _, mapping := range snapshot.Mappings {
		summary.NewSubcategories += len(mapping.Subcategories)
	}

	return summary
}

// DroppedCategoryCount is how many categories fewer the new structure has.
// It is zero when the new structure is not smaller.
func (s Summary) DroppedCategoryCount() int {
	return max(s.OldCategories-s.NewCategories, 0)
}

// ConsolidatedSubcategoryCount is how many subcategories were merged away.
func (s Summary) ConsolidatedSubcategoryCount() int {
	return max(s.OldSubcategories-s.NewSubcategories, 0)
}
