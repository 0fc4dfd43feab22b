// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"github.com/taibuivan/migrationboard/pkg/slug"
)

// Index is the enriched, read-only view of a category tree.
//
// Slices returned by its methods are shared and must not be modified.
type Index struct {
	categories []EnrichedCategory
	products   []EnrichedProduct

	// Key maps keep the first position for a key, like a linear search would.
	categoryBySlug   map[string]int
	productByArticle map[string]int

	duplicates int
}

// BuildIndex walks the category tree in fixture order and returns its index.
//
// Categories and subcategories get slugs from their English names. Products
// are flattened into a list holding the first occurrence of every article
// number; later occurrences are skipped silently.
func BuildIndex(tree []CleanCategory) *Index {
	index := &Index{
		categories:       make([]EnrichedCategory, 0, len(tree)),
		categoryBySlug:   make(map[string]int, len(tree)),
		productByArticle: make(map[string]int),
	}

	for _, raw := range tree {
		category := raw.Normalized()
		categorySlug := slug.From(category.Name.EN)

		enriched := EnrichedCategory{
			Name:             category.Name,
			Slug:             categorySlug,
			SubcategoryCount: len(category.Subcategories),
			Subcategories:    make([]EnrichedSubcategory, 0, len(category.Subcategories)),
		}

		for _, sub := range category.Subcategories {
			subcategorySlug := slug.From(sub.Name.EN)

			enriched.Subcategories = append(enriched.Subcategories, EnrichedSubcategory{
				Name:         sub.Name,
				Description:  sub.Description,
				Slug:         subcategorySlug,
				ProductCount: len(sub.Products),
				CategorySlug: categorySlug,
				CategoryName: category.Name,
			})

			enriched.ProductCount += len(sub.Products)
			if len(sub.Products) == 0 {
				enriched.EmptySubcategoryCount++
			}

			for _, product := range sub.Products {
				if _, seen := index.productByArticle[product.ArticleNumber]; seen {
					index.duplicates++
					continue
				}

				index.productByArticle[product.ArticleNumber] = len(index.products)
				index.products = append(index.products, EnrichedProduct{
					Product:         product,
					CategorySlug:    categorySlug,
					CategoryName:    category.Name,
					SubcategorySlug: subcategorySlug,
					SubcategoryName: sub.Name,
				})
			}
		}

		if _, taken := index.categoryBySlug[categorySlug]; !taken {
			index.categoryBySlug[categorySlug] = len(index.categories)
		}
		index.categories = append(index.categories, enriched)
	}

	return index
}

// # Queries

// Categories returns every enriched category in fixture order.
func (index *Index) Categories() []EnrichedCategory {
	return index.categories
}

// CategoryBySlug returns the first category with the given slug.
func (index *Index) CategoryBySlug(categorySlug string) (EnrichedCategory, bool) {
	position, ok := index.categoryBySlug[categorySlug]
	if !ok {
		return EnrichedCategory{}, false
	}
	return index.categories[position], true
}

// SubcategoryBySlug resolves a category and one of its subcategories. It fails
// if either level is unknown.
func (index *Index) SubcategoryBySlug(categorySlug, subcategorySlug string) (EnrichedCategory, EnrichedSubcategory, bool) {
	category, ok := index.CategoryBySlug(categorySlug)
	if !ok {
		return EnrichedCategory{}, EnrichedSubcategory{}, false
	}

	for _, sub := range category.Subcategories {
		if sub.Slug == subcategorySlug {
			return category, sub, true
		}
	}

	return EnrichedCategory{}, EnrichedSubcategory{}, false
}

// Products returns the de-duplicated product list in traversal order.
func (index *Index) Products() []EnrichedProduct {
	return index.products
}

// ProductByArticleNumber returns the retained product for an article number.
func (index *Index) ProductByArticleNumber(articleNumber string) (EnrichedProduct, bool) {
	position, ok := index.productByArticle[articleNumber]
	if !ok {
		return EnrichedProduct{}, false
	}
	return index.products[position], true
}

// ProductsForCategory returns the products attributed to a category.
func (index *Index) ProductsForCategory(categorySlug string) []EnrichedProduct {
	result := make([]EnrichedProduct, 0)
	for _, product := range index.products {
		if product.CategorySlug == categorySlug {
			result = append(result, product)
		}
	}
	return result
}

// ProductsForSubcategory returns the products attributed to a subcategory.
func (index *Index) ProductsForSubcategory(categorySlug, subcategorySlug string) []EnrichedProduct {
	result := make([]EnrichedProduct, 0)
	for _, product := range index.products {
		if product.CategorySlug == categorySlug && product.SubcategorySlug == subcategorySlug {
			result = append(result, product)
		}
	}
	return result
}

// # Aggregates

// Totals summarises the category list.
type Totals struct {
	Categories    int `json:"categories"`
	Subcategories int `json:"subcategories"`
	Products      int `json:"products"`
}

// Totals sums the per-category counts. Products is the raw sum, so it may be
// larger than len(Products()).
func (index *Index) Totals() Totals {
	totals := Totals{Categories: len(index.categories)}
	for _, category := range index.categories {
		totals.Subcategories += category.SubcategoryCount
		totals.Products += category.ProductCount
	}
	return totals
}

// DuplicateCount is the number of product rows dropped by de-duplication.
func (index *Index) DuplicateCount() int {
	return index.duplicates
}
