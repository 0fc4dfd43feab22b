// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package web renders the dashboard as server-side HTML.
//
// # State
//
// Pages are pure functions of the loaded fixtures. Everything a visitor can
// change (page number, filters, display language, the empty-subcategory
// toggle) lives in the query string, so every view is linkable and the
// server keeps no per-visitor state besides the session cookie.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/migrationboard/internal/auth"
	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/fixture"
	"github.com/taibuivan/migrationboard/internal/platform/ctxutil"
	"github.com/taibuivan/migrationboard/internal/platform/middleware"
	requestutil "github.com/taibuivan/migrationboard/internal/platform/request"
	"github.com/taibuivan/migrationboard/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages lists the templates rendered inside the shared layout.
var pages = []string{
	"dashboard", "categories", "category", "subcategory",
	"products", "product", "login", "notfound",
}

// Site describes the catalog in page chrome.
type Site struct {
	Title          string
	Domain         string
	SourcePlatform string
	TargetPlatform string
}

// Deps are the collaborators of the HTML handler.
type Deps struct {
	BasePath string
	Site     Site
	Snapshot *fixture.Snapshot
	Catalog  *catalog.Service
	Reports  *report.Service
	Auth     *auth.Service
	Cookies  *auth.Cookies
	Logger   *slog.Logger
}

// Handler serves the HTML dashboard.
type Handler struct {
	deps      Deps
	templates map[string]*template.Template
}

// NewHandler parses the embedded templates.
func NewHandler(deps Deps) (*Handler, error) {
	templates := make(map[string]*template.Template, len(pages))

	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("web: parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Handler{deps: deps, templates: templates}, nil
}

// RegisterRoutes mounts the pages on router, which must already run
// [middleware.Authenticate].
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/login", handler.loginPage)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	router.Group(func(gated chi.Router) {
		gated.Use(middleware.RequireSessionRedirect(handler.path("/login")))

		gated.Get("/", handler.dashboard)
		gated.Get("/categories", handler.categories)
		gated.Get("/categories/{categorySlug}", handler.category)
		gated.Get("/categories/{categorySlug}/{subcategorySlug}", handler.subcategory)
		gated.Get("/products", handler.products)
		gated.Get("/products/{articleNumber}", handler.product)
		gated.Get("/report.pdf", handler.downloadReport)
	})

	router.NotFound(handler.notFound)
}

// # Rendering

// view is the data every page template receives.
type view struct {
	Title         string
	Base          string
	Active        string
	Site          Site
	Authenticated bool
	Page          any
}

func (handler *Handler) render(writer http.ResponseWriter, request *http.Request, status int, name, title string, page any) {
	tmpl, ok := handler.templates[name]
	if !ok {
		handler.serverError(writer, request, fmt.Errorf("web: unknown template %s", name))
		return
	}

	data := view{
		Title:         title,
		Base:          handler.deps.BasePath,
		Active:        handler.activeTab(request.URL.Path),
		Site:          handler.deps.Site,
		Authenticated: requestutil.IsAuthenticated(request),
		Page:          page,
	}

	// Render into a buffer so a template error never leaves half a page.
	var buffer bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buffer, "layout", data); err != nil {
		handler.serverError(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.Header().Set("Cache-Control", "no-store")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

func (handler *Handler) notFound(writer http.ResponseWriter, request *http.Request) {
	handler.render(writer, request, http.StatusNotFound, "notfound", "Not found", nil)
}

func (handler *Handler) serverError(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()
	ctxutil.GetLoggerOr(ctx, handler.deps.Logger).ErrorContext(ctx, "page_render_failed",
		slog.String("path", request.URL.Path),
		slog.String("error", err.Error()),
	)
	http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// path joins a dashboard-relative path onto the base path.
func (handler *Handler) path(suffix string) string {
	return handler.deps.BasePath + suffix
}

// activeTab picks the highlighted navbar tab. The dashboard tab only matches
// the base path itself; the others match by prefix.
func (handler *Handler) activeTab(path string) string {
	base := handler.deps.BasePath
	switch {
	case path == base || path == base+"/":
		return "dashboard"
	case strings.HasPrefix(path, base+"/categories"):
		return "categories"
	case strings.HasPrefix(path, base+"/products"):
		return "products"
	}
	return ""
}
