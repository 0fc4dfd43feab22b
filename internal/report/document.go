// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/fixture"
	"github.com/taibuivan/migrationboard/internal/platform/constants"
	"github.com/taibuivan/migrationboard/internal/urlmap"
	"github.com/taibuivan/migrationboard/pkg/numfmt"
)

// Meta names the catalog and the two platforms of the migration.
type Meta struct {
	Catalog        string // URL-safe name, used for the file name
	Title          string // display name, e.g. "Antique Warehouse"
	Domain         string
	SourcePlatform string
	TargetPlatform string
}

// Figure is one key figure box.
type Figure struct {
	Label  string
	Value  string
	Detail string
}

// URLTable is a list of redirects rendered on its own page.
type URLTable struct {
	Type          urlmap.Type
	Title         string
	Intro         string
	TargetHeading string // "New URL" or "Redirects To"
	ArticleColumn bool
	Entries       []urlmap.Entry
}

// Translation is one language block of a sample product.
type Translation struct {
	Language    string
	Name        string
	Description string
}

// Sample is a sample product card.
type Sample struct {
	Caption      string
	Price        string
	Translations []Translation
}

// Document is the page model of the migration report, ready to render.
type Document struct {
	Title   string
	Author  string
	Subject string
	Footer  string
	Created time.Time

	// Cover
	CoverTitle    string
	CoverSubtitle string
	CoverMigrates string
	CoverDomain   string
	CoverDate     string

	// Executive summary
	SummaryParagraphs []string
	KeyFigures        []Figure

	// Category restructuring
	CategoryIntro   string
	CategoryRows    []CategoryRow
	DroppedIntro    string
	DroppedRows     []CategoryRow
	DroppedTarget   string
	StructureIntro  string
	Patterns        []URLPattern
	RedirectIntro   string
	RedirectsByType []Figure
	URLTables       []URLTable

	// Multilingual content
	SamplesIntro string
	Samples      []Sample
}

// Dash stands for a missing value.
const Dash = "—"

// DateLayout renders dates as "18 October 2026".
const DateLayout = "2 January 2006"

// Build assembles the report document for snapshot.
func Build(snapshot *fixture.Snapshot, meta Meta, now time.Time) *Document {
	summary := Summarize(snapshot)

	doc := &Document{
		Title:   meta.Title + " - Migration Report",
		Author:  "Data Visualizer",
		Subject: fmt.Sprintf("%s to %s migration of %s", meta.SourcePlatform, meta.TargetPlatform, meta.Domain),
		Footer:  meta.Domain + " " + Dash + " Migration Report",
		Created: now,

		CoverTitle:    meta.Title,
		CoverSubtitle: "Website Migration Report",
		CoverMigrates: meta.SourcePlatform + " -> " + meta.TargetPlatform,
		CoverDomain:   meta.Domain,
		CoverDate:     now.Format(DateLayout),

		SummaryParagraphs: []string{
			fmt.Sprintf("This report provides a comprehensive overview of the website migration for %s "+
				"from a %s platform to %s. The migration encompasses URL restructuring, "+
				"category reorganization, and multilingual content transfer across Dutch, English, and German.",
				meta.Domain, lowerFirst(meta.SourcePlatform), meta.TargetPlatform),
			"All existing URLs have been mapped to their new locations using 301 permanent redirects. " +
				"This ensures that visitors arriving via old links or search engine results will be seamlessly " +
				"forwarded to the correct new pages, preserving both user experience and SEO value.",
		},
		KeyFigures: keyFigures(summary, meta),

		CategoryRows:  CategoryRows(snapshot),
		DroppedRows:   DroppedRows(snapshot),
		DroppedTarget: DroppedTarget,
		DroppedIntro: "The following categories have been removed. All incoming traffic to these pages " +
			"will be redirected to " + DroppedTarget + ".",

		StructureIntro: "The URL structure has been modernized for better SEO performance and readability. " +
			"Product URLs now use descriptive slugs instead of numeric IDs, and all product categories are " +
			"consistently organized under a /producten/ prefix.",
		Patterns: URLPatterns,

		RedirectIntro: fmt.Sprintf("A total of %s URL redirects have been configured to ensure a seamless "+
			"transition. These 301 (permanent) redirects will automatically send visitors and search engines "+
			"from old URLs to their new locations, preserving link equity and preventing 404 errors.",
			numfmt.Int(summary.Redirects)),
		URLTables: urlTables(snapshot.URLs),

		SamplesIntro: "All product content has been migrated with full translations in Dutch (NL), English (EN), " +
			"and German (DE). This includes product names and descriptions. Below are sample products " +
			"demonstrating the three-language support.",
		Samples: samples(snapshot.Categories),
	}

	doc.CategoryIntro = fmt.Sprintf("The category structure has been simplified from %d to %d categories, "+
		"consolidating related product groups for better navigation and SEO.",
		summary.OldCategories, summary.NewCategories)
	if n := len(doc.DroppedRows); n > 0 {
		doc.CategoryIntro += fmt.Sprintf(" %d categories have been dropped and their traffic will be "+
			"redirected to the main products page (%s).", n, DroppedTarget)
	}

	counts := urlmap.CountByType(snapshot.URLs)
	for _, t := range urlmap.KnownTypes {
		doc.RedirectsByType = append(doc.RedirectsByType, Figure{
			Label: pluralLabel(t),
			Value: numfmt.Int(counts[t]),
		})
	}

	return doc
}

func keyFigures(summary Summary, meta Meta) []Figure {
	figures := []Figure{
		{Label: "Unique Products", Value: numfmt.IntOrDash(summary.UniqueProducts)},
		{Label: "Categories", Value: Dash},
		{Label: "Subcategories", Value: Dash},
		{Label: "URL Redirects", Value: numfmt.IntOrDash(summary.Redirects), Detail: "301 permanent redirects configured"},
		{Label: "Languages", Value: fmt.Sprint(summary.Languages), Detail: "Dutch / English / German"},
		{Label: "Platform", Value: meta.TargetPlatform, Detail: "Migrated from " + lowerFirst(meta.SourcePlatform)},
	}

	if summary.ProductURLRows > 0 {
		figures[0].Detail = numfmt.Int(summary.ProductURLRows) + " total incl. duplicates"
	}
	if summary.OldCategories > 0 {
		figures[1].Value = fmt.Sprintf("%d -> %d", summary.OldCategories, summary.NewCategories)
	}
	if n := summary.DroppedCategoryCount(); n > 0 {
		figures[1].Detail = fmt.Sprintf("%d dropped", n)
	}
	if summary.OldSubcategories > 0 {
		figures[2].Value = fmt.Sprintf("%d -> %d", summary.OldSubcategories, summary.NewSubcategories)
	}
	if n := summary.ConsolidatedSubcategoryCount(); n > 0 {
		figures[2].Detail = fmt.Sprintf("%d consolidated", n)
	}

	return figures
}

func urlTables(entries []urlmap.Entry) []URLTable {
	groups := urlmap.GroupByType(entries)

	tables := make([]URLTable, 0, len(groups))
	for _, group := range groups {
		table := URLTable{
			Type:          group.Type,
			Title:         fmt.Sprintf("%s URLs (%s)", group.Type.Label(), numfmt.Int(len(group.Entries))),
			TargetHeading: "New URL",
			Entries:       group.Entries,
		}

		switch group.Type {
		case urlmap.TypeProduct:
			table.ArticleColumn = true
			table.Intro = "Each product has been mapped from its old numeric ID URL to a new SEO-friendly slug URL. " +
				"Article numbers are preserved in the new platform's database for reference."
		case urlmap.TypeSubcategory:
			table.Intro = "Old subcategory pages are redirected to their place in the new category structure."
		case urlmap.TypePagination:
			table.TargetHeading = "Redirects To"
			table.Intro = "Old pagination pages (/pagina/N) are redirected to their parent category page. " +
				"Pagination is now handled client-side."
		case urlmap.TypeDropped:
			table.TargetHeading = "Redirects To"
			table.Intro = "Pages of dropped categories are redirected to " + DroppedTarget + "."
		}

		tables = append(tables, table)
	}
	return tables
}

func samples(categories []catalog.CleanCategory) []Sample {
	picked := SampleProducts(categories, constants.ReportSampleProducts)

	cards := make([]Sample, 0, len(picked))
	for _, sample := range picked {
		card := Sample{
			Caption: sample.Category + " · #" + sample.Product.ArticleNumber,
			Price:   sample.Product.Price,
		}
		for _, lang := range []catalog.Lang{catalog.LangNL, catalog.LangEN, catalog.LangDE} {
			card.Translations = append(card.Translations, Translation{
				Language:    lang.NativeName(),
				Name:        orDash(sample.Product.Name.In(lang)),
				Description: orDash(Truncate(sample.Product.Description.In(lang), constants.ReportDescriptionLimit)),
			})
		}
		cards = append(cards, card)
	}
	return cards
}

func pluralLabel(t urlmap.Type) string {
	switch t {
	case urlmap.TypeProduct:
		return "Products"
	case urlmap.TypeSubcategory:
		return "Subcategories"
	}
	return t.Label()
}

func lowerFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(first)) + s[size:]
}

func orDash(s string) string {
	if s == "" {
		return Dash
	}
	return s
}
