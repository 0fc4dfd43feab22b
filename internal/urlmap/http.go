// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package urlmap

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/migrationboard/internal/platform/request"
	"github.com/taibuivan/migrationboard/internal/platform/respond"
	"github.com/taibuivan/migrationboard/internal/platform/validate"
	"github.com/taibuivan/migrationboard/pkg/pagination"
)

// Handler exposes the redirect list as JSON.
type Handler struct {
	entries []Entry
}

// NewHandler constructs a URL list [Handler] over the loaded redirect rows.
func NewHandler(entries []Entry) *Handler {
	return &Handler{entries: entries}
}

// RegisterRoutes mounts the URL endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/urls", handler.listURLs)
	router.Get("/urls/counts", handler.countURLs)
}

/*
GET /api/v1/urls.

Request:
  - type: all | product | subcategory | pagination | dropped | category
  - q: string (substring of old or new URL)
  - page, limit: int

Response:
  - 200: []Entry, paginated
  - 400: unknown type
*/
func (handler *Handler) listURLs(writer http.ResponseWriter, request *http.Request) {
	filter, err := FilterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Window(Filter(handler.entries, filter), pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

/*
GET /api/v1/urls/counts.

Response:
  - 200: {total, by_type}
*/
func (handler *Handler) countURLs(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]any{
		"total":   len(handler.entries),
		"by_type": CountByType(handler.entries),
	})
}

// FilterFromRequest reads and validates the type and search parameters.
func FilterFromRequest(request *http.Request) (URLFilter, error) {
	filter := URLFilter{
		Type:   Type(requestutil.Query(request, "type")),
		Search: requestutil.Query(request, "q"),
	}

	if !filter.AllTypes() {
		validator := &validate.Validator{}
		validator.OneOf("type", string(filter.Type), "all",
			string(TypeProduct), string(TypeSubcategory), string(TypePagination),
			string(TypeDropped), string(TypeCategory),
		)
		if err := validator.Err(); err != nil {
			return URLFilter{}, err
		}
	}

	return filter, nil
}
