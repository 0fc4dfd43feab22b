// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/migrationboard/internal/platform/request"
	"github.com/taibuivan/migrationboard/internal/platform/respond"
	"github.com/taibuivan/migrationboard/internal/platform/validate"
	"github.com/taibuivan/migrationboard/pkg/convert"
	"github.com/taibuivan/migrationboard/pkg/pagination"
)

// # Handler Implementation

// Handler exposes the catalog as JSON.
type Handler struct {
	service *Service
}

// NewHandler constructs a catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the catalog endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/categories", handler.listCategories)
	router.Get("/categories/{categorySlug}", handler.getCategory)
	router.Get("/categories/{categorySlug}/{subcategorySlug}", handler.getSubcategory)
	router.Get("/products", handler.listProducts)
	router.Get("/products/{articleNumber}", handler.getProduct)
	router.Get("/quality", handler.getQuality)
}

/*
GET /api/v1/categories.

Response:
  - 200: {categories, totals}
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"categories": handler.service.ListCategories(request.Context()),
		"totals":     handler.service.Totals(request.Context()),
	})
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetCategory(request.Context(), requestutil.Param(request, "categorySlug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) getSubcategory(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetSubcategory(request.Context(),
		requestutil.Param(request, "categorySlug"),
		requestutil.Param(request, "subcategorySlug"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

/*
GET /api/v1/products.

Request:
  - q: string (name in any language or article number)
  - category: string (category slug)
  - missing_price, call_for_price, missing_description: bool
  - page, limit: int

Response:
  - 200: []EnrichedProduct, paginated
  - 400: category is not a slug
*/
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	filters := FiltersFromRequest(request)

	if filters.CategorySlug != "" {
		validator := &validate.Validator{}
		if err := validator.Slug("category", filters.CategorySlug).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	products := handler.service.ListProducts(request.Context(), filters)
	page, meta := pagination.Window(products, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.GetProduct(request.Context(), requestutil.Param(request, "articleNumber"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"product": product,
		"badges":  QualityFlags(*product),
	})
}

func (handler *Handler) getQuality(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Quality(request.Context()))
}

// FiltersFromRequest reads product filters from the query string.
func FiltersFromRequest(request *http.Request) ProductFilters {
	query := request.URL.Query()

	category := query.Get("category")
	if category == "all" {
		category = ""
	}

	return ProductFilters{
		Search:                 query.Get("q"),
		CategorySlug:           category,
		ShowMissingPrice:       convert.ToBool(query.Get("missing_price")),
		ShowCallForPrice:       convert.ToBool(query.Get("call_for_price")),
		ShowMissingDescription: convert.ToBool(query.Get("missing_description")),
	}
}
