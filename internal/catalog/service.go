// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/migrationboard/internal/platform/apperr"
)

// # Service Definition

// Service answers catalog questions for the HTML views and the JSON API.
//
// Lookups that miss return an [apperr.NotFound] error so both transports can
// map them to a 404.
type Service struct {
	index  *Index
	logger *slog.Logger
}

// NewService constructs a catalog [Service] over a built index.
func NewService(index *Index, logger *slog.Logger) *Service {
	return &Service{index: index, logger: logger}
}

// CategoryDetail is a category together with its attributed products.
type CategoryDetail struct {
	Category EnrichedCategory  `json:"category"`
	Products []EnrichedProduct `json:"products"`
}

// SubcategoryDetail is a subcategory, its parent and its attributed products.
type SubcategoryDetail struct {
	Category    EnrichedCategory    `json:"category"`
	Subcategory EnrichedSubcategory `json:"subcategory"`
	Products    []EnrichedProduct   `json:"products"`
}

// # Queries

// ListCategories returns every category in fixture order.
func (service *Service) ListCategories(_ context.Context) []EnrichedCategory {
	return service.index.Categories()
}

// Totals returns the aggregate counts for the category list.
func (service *Service) Totals(_ context.Context) Totals {
	return service.index.Totals()
}

// GetCategory resolves a category slug.
func (service *Service) GetCategory(ctx context.Context, categorySlug string) (*CategoryDetail, error) {
	category, ok := service.index.CategoryBySlug(categorySlug)
	if !ok {
		service.logger.DebugContext(ctx, "category_not_found", slog.String("category_slug", categorySlug))
		return nil, apperr.NotFound("Category")
	}

	return &CategoryDetail{
		Category: category,
		Products: service.index.ProductsForCategory(categorySlug),
	}, nil
}

// GetSubcategory resolves a category/subcategory slug pair.
func (service *Service) GetSubcategory(ctx context.Context, categorySlug, subcategorySlug string) (*SubcategoryDetail, error) {
	category, subcategory, ok := service.index.SubcategoryBySlug(categorySlug, subcategorySlug)
	if !ok {
		service.logger.DebugContext(ctx, "subcategory_not_found",
			slog.String("category_slug", categorySlug),
			slog.String("subcategory_slug", subcategorySlug),
		)
		return nil, apperr.NotFound("Subcategory")
	}

	return &SubcategoryDetail{
		Category:    category,
		Subcategory: subcategory,
		Products:    service.index.ProductsForSubcategory(categorySlug, subcategorySlug),
	}, nil
}

// ListProducts returns the de-duplicated products matching filters.
func (service *Service) ListProducts(_ context.Context, filters ProductFilters) []EnrichedProduct {
	return FilterProducts(service.index.Products(), filters)
}

// CountProducts is the size of the de-duplicated product list.
func (service *Service) CountProducts(_ context.Context) int {
	return len(service.index.Products())
}

// GetProduct resolves an article number.
func (service *Service) GetProduct(ctx context.Context, articleNumber string) (*EnrichedProduct, error) {
	product, ok := service.index.ProductByArticleNumber(articleNumber)
	if !ok {
		service.logger.DebugContext(ctx, "product_not_found", slog.String("article_number", articleNumber))
		return nil, apperr.NotFound("Product")
	}
	return &product, nil
}

// Quality returns the data-quality counters.
func (service *Service) Quality(_ context.Context) QualityStats {
	return service.index.QualityStats()
}
