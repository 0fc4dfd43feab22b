// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/migrationboard/internal/platform/apperr"
	"github.com/taibuivan/migrationboard/internal/platform/respond"
)

// ContentType is the media type of the report artifact.
const ContentType = "application/pdf"

// Handler exposes the report and the overview figures.
type Handler struct {
	service *Service
}

// NewHandler constructs a report [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the report endpoints on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/overview", handler.getOverview)
	router.Get("/report", handler.downloadReport)
}

/*
GET /api/v1/overview.

Response:
  - 200: {summary, mappings, dropped, patterns}
*/
func (handler *Handler) getOverview(writer http.ResponseWriter, _ *http.Request) {
	overview := handler.service.Overview()
	respond.OK(writer, map[string]any{
		"summary":  overview.Summary,
		"mappings": overview.Mappings,
		"dropped":  overview.Dropped,
		"patterns": URLPatterns,
	})
}

/*
GET /api/v1/report.

Response:
  - 200: application/pdf attachment
  - 500: generation failed (details are only logged)
*/
func (handler *Handler) downloadReport(writer http.ResponseWriter, request *http.Request) {
	artifact, err := handler.service.Generate(request.Context())
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}
	respond.Attachment(writer, ContentType, handler.service.FileName(), artifact)
}
