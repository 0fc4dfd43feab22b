// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog models the product catalog of a migrated shop and builds the
read-only, slug-indexed view of it that every page and API endpoint reads from.

The catalog is a tree: category → subcategory → product. [BuildIndex] walks the
tree once, assigns URL slugs derived from the English names, aggregates product
counts and flattens the products into a list de-duplicated by article number.

The resulting [*Index] is immutable and safe for concurrent use.
*/
package catalog

import "strings"

// # Languages

// Lang identifies one of the catalog's content languages.
type Lang string

const (
	LangNL Lang = "nl"
	LangEN Lang = "en"
	LangDE Lang = "de"
)

// Langs lists the catalog languages in display order.
var Langs = []Lang{LangEN, LangNL, LangDE}

// Label is the human-readable language name.
func (l Lang) Label() string {
	switch l {
	case LangNL:
		return "Dutch"
	case LangDE:
		return "German"
	default:
		return "English"
	}
}

// NativeName is the language's name in that language.
func (l Lang) NativeName() string {
	switch l {
	case LangNL:
		return "Nederlands"
	case LangDE:
		return "Deutsch"
	default:
		return "English"
	}
}

// MultiLang is a translated text triple. An empty string means untranslated.
type MultiLang struct {
	NL string `json:"nl"`
	EN string `json:"en"`
	DE string `json:"de"`
}

// In returns the text in the given language.
func (m MultiLang) In(lang Lang) string {
	switch lang {
	case LangNL:
		return m.NL
	case LangDE:
		return m.DE
	default:
		return m.EN
	}
}

// IsBlank reports whether every translation is empty after trimming.
func (m MultiLang) IsBlank() bool {
	return strings.TrimSpace(m.NL) == "" &&
		strings.TrimSpace(m.EN) == "" &&
		strings.TrimSpace(m.DE) == ""
}

// # Fixture Records

// Product is a single catalog article. ArticleNumber is its identity.
type Product struct {
	ArticleNumber string    `json:"articleNumber"`
	Price         string    `json:"price"`
	Name          MultiLang `json:"name"`
	Description   MultiLang `json:"description"`
}

// CleanSubcategory is the second level of the cleaned category tree.
type CleanSubcategory struct {
	Name        MultiLang `json:"name"`
	Description MultiLang `json:"description"`
	Products    []Product `json:"products"`
}

// CleanCategory is a top-level node of the cleaned category tree.
//
// Older fixtures list products directly on the category. Those are carried in
// Products and folded into one implicit subcategory by [CleanCategory.Normalized].
type CleanCategory struct {
	Name          MultiLang          `json:"name"`
	Subcategories []CleanSubcategory `json:"subcategories"`
	Products      []Product          `json:"products,omitempty"`
}

// Normalized returns the category in the two-level shape.
//
// A flat category becomes a category with exactly one subcategory that shares
// the category's name and has no description.
func (c CleanCategory) Normalized() CleanCategory {
	if len(c.Subcategories) > 0 || c.Products == nil {
		return CleanCategory{Name: c.Name, Subcategories: c.Subcategories}
	}

	return CleanCategory{
		Name: c.Name,
		Subcategories: []CleanSubcategory{{
			Name:     c.Name,
			Products: c.Products,
		}},
	}
}

// SubcategoryMapping records which old subcategories were folded into a new one.
type SubcategoryMapping struct {
	New string   `json:"new"`
	Old []string `json:"old"`
}

// CategoryMapping is a many-to-one rename/merge from old category names to a
// new one.
type CategoryMapping struct {
	New           string               `json:"new"`
	Old           []string             `json:"old"`
	Subcategories []SubcategoryMapping `json:"subcategories,omitempty"`
}

// IsRename reports whether the mapping is anything other than a single old
// category carried over under the same name.
func (m CategoryMapping) IsRename() bool {
	return !(len(m.Old) == 1 && m.Old[0] == m.New)
}

// # Enriched Views

// EnrichedSubcategory is a subcategory annotated with its slug, raw product
// count and parent category.
type EnrichedSubcategory struct {
	Name         MultiLang `json:"name"`
	Description  MultiLang `json:"description"`
	Slug         string    `json:"slug"`
	ProductCount int       `json:"productCount"`
	CategorySlug string    `json:"categorySlug"`
	CategoryName MultiLang `json:"categoryName"`
}

// IsEmpty reports whether the subcategory holds no products.
func (s EnrichedSubcategory) IsEmpty() bool { return s.ProductCount == 0 }

// EnrichedCategory is a category annotated with its slug and aggregate counts.
//
// ProductCount is the sum of the raw subcategory counts, so an article listed
// twice within the same category is counted twice.
type EnrichedCategory struct {
	Name                  MultiLang             `json:"name"`
	Slug                  string                `json:"slug"`
	ProductCount          int                   `json:"productCount"`
	SubcategoryCount      int                   `json:"subcategoryCount"`
	EmptySubcategoryCount int                   `json:"emptySubcategoryCount"`
	Subcategories         []EnrichedSubcategory `json:"enrichedSubcategories"`
}

// EnrichedProduct is a product attributed to the first category and
// subcategory it was found in.
type EnrichedProduct struct {
	Product
	CategorySlug    string    `json:"categorySlug"`
	CategoryName    MultiLang `json:"categoryName"`
	SubcategorySlug string    `json:"subcategorySlug"`
	SubcategoryName MultiLang `json:"subcategoryName"`
}
