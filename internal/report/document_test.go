// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/migrationboard/internal/fixture"
	"github.com/taibuivan/migrationboard/internal/report"
	"github.com/taibuivan/migrationboard/internal/urlmap"
)

var meta = report.Meta{
	Catalog:        "antiquewarehouse",
	Title:          "Antique Warehouse",
	Domain:         "antiquewarehouse.nl",
	SourcePlatform: "Custom PHP",
	TargetPlatform: "WordPress",
}

var reportDate = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

func TestBuild_CoverAndKeyFigures(t *testing.T) {
	doc := report.Build(sampleSnapshot(), meta, reportDate)

	assert.Equal(t, "Antique Warehouse - Migration Report", doc.Title)
	assert.Equal(t, "Data Visualizer", doc.Author)
	assert.Equal(t, "18 October 2026", doc.CoverDate)
	assert.Equal(t, "antiquewarehouse.nl — Migration Report", doc.Footer)

	assert.Equal(t, []report.Figure{
		{Label: "Unique Products", Value: "3", Detail: "5 total incl. duplicates"},
		{Label: "Categories", Value: "3 -> 2", Detail: "1 dropped"},
		{Label: "Subcategories", Value: "4 -> 1", Detail: "3 consolidated"},
		{Label: "URL Redirects", Value: "8", Detail: "301 permanent redirects configured"},
		{Label: "Languages", Value: "3", Detail: "Dutch / English / German"},
		{Label: "Platform", Value: "WordPress", Detail: "Migrated from custom PHP"},
	}, doc.KeyFigures)

	assert.Contains(t, doc.CategoryIntro, "simplified from 3 to 2 categories")
	assert.Contains(t, doc.CategoryIntro, "1 categories have been dropped")
}

/*
TestBuild_PlatformNames lowercases only the first letter of the source
platform, including names that start with a multi-byte letter.
*/
func TestBuild_PlatformNames(t *testing.T) {
	tests := []struct {
		source string
		detail string
	}{
		{"Custom PHP", "Migrated from custom PHP"},
		{"Ébauche CMS", "Migrated from ébauche CMS"},
		{"Ølstue", "Migrated from ølstue"},
		{"", "Migrated from "},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			platformMeta := meta
			platformMeta.SourcePlatform = tt.source

			doc := report.Build(sampleSnapshot(), platformMeta, reportDate)

			assert.Equal(t, tt.detail, doc.KeyFigures[5].Detail)
			for _, paragraph := range doc.SummaryParagraphs {
				assert.True(t, utf8.ValidString(paragraph), paragraph)
			}
		})
	}
}

/*
TestBuild_EmptySnapshot falls back to dashes and omits optional sections.
*/
func TestBuild_EmptySnapshot(t *testing.T) {
	doc := report.Build(&fixture.Snapshot{}, meta, reportDate)

	assert.Equal(t, report.Dash, doc.KeyFigures[0].Value)
	assert.Empty(t, doc.KeyFigures[0].Detail)
	assert.Equal(t, report.Dash, doc.KeyFigures[1].Value)
	assert.Equal(t, report.Dash, doc.KeyFigures[3].Value)
	assert.Empty(t, doc.URLTables)
	assert.Empty(t, doc.Samples)
	assert.Empty(t, doc.DroppedRows)
	assert.NotContains(t, doc.CategoryIntro, "dropped")
}

func TestBuild_URLTables(t *testing.T) {
	doc := report.Build(sampleSnapshot(), meta, reportDate)

	require.Len(t, doc.URLTables, 4)
	assert.Equal(t, urlmap.TypeProduct, doc.URLTables[0].Type)
	assert.True(t, doc.URLTables[0].ArticleColumn)
	assert.Equal(t, "Product URLs (5)", doc.URLTables[0].Title)
	assert.Equal(t, "New URL", doc.URLTables[1].TargetHeading)
	assert.Equal(t, "Redirects To", doc.URLTables[2].TargetHeading)
	assert.Equal(t, urlmap.TypeDropped, doc.URLTables[3].Type)

	assert.Equal(t, []report.Figure{
		{Label: "Products", Value: "5"},
		{Label: "Subcategories", Value: "1"},
		{Label: "Pagination", Value: "1"},
		{Label: "Dropped", Value: "1"},
	}, doc.RedirectsByType)
}

func TestBuild_Samples(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.Categories[0].Subcategories[0].Products[0].Description.NL = strings.Repeat("x", 200)

	doc := report.Build(snapshot, meta, reportDate)

	require.Len(t, doc.Samples, 5)
	first := doc.Samples[0]
	assert.Equal(t, "Klokken · #2755", first.Caption)
	assert.Equal(t, "€ 1.250", first.Price)

	require.Len(t, first.Translations, 3)
	assert.Equal(t, "Nederlands", first.Translations[0].Language)
	assert.Equal(t, strings.Repeat("x", 150)+"...", first.Translations[0].Description)
	assert.Equal(t, "English", first.Translations[1].Language)
	assert.Equal(t, report.Dash, first.Translations[1].Description)
	assert.Equal(t, "Deutsch", first.Translations[2].Language)
	assert.Equal(t, report.Dash, first.Translations[2].Name)
}

/*
TestRenderPDF renders a complete document, including a product table long
enough to spill over several pages.
*/
func TestRenderPDF(t *testing.T) {
	snapshot := sampleSnapshot()
	for i := 0; i < 200; i++ {
		snapshot.URLs = append(snapshot.URLs, urlmap.Entry{
			OldURL:        "/producten/show/" + strings.Repeat("9", i%7+1),
			NewURL:        "/product/een-heel-lange-productnaam-die-over-meerdere-regels-moet-worden-afgebroken/",
			Type:          urlmap.TypeProduct,
			ArticleNumber: "9",
		})
	}

	var buffer bytes.Buffer
	require.NoError(t, report.RenderPDF(report.Build(snapshot, meta, reportDate), &buffer))

	output := buffer.Bytes()
	assert.True(t, bytes.HasPrefix(output, []byte("%PDF-")))
	assert.Contains(t, string(output[len(output)-16:]), "%%EOF")

	// Cover, summary, categories, structure, redirects, four URL tables and samples.
	pages := bytes.Count(output, []byte("/Type /Page"))
	assert.Greater(t, pages, 10)
}
