// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/platform/apperr"
	"github.com/taibuivan/migrationboard/internal/platform/constants"
	requestutil "github.com/taibuivan/migrationboard/internal/platform/request"
	"github.com/taibuivan/migrationboard/internal/platform/respond"
	"github.com/taibuivan/migrationboard/internal/report"
	"github.com/taibuivan/migrationboard/internal/urlmap"
	"github.com/taibuivan/migrationboard/pkg/convert"
	"github.com/taibuivan/migrationboard/pkg/numfmt"
	"github.com/taibuivan/migrationboard/pkg/pagination"
	"github.com/taibuivan/migrationboard/pkg/slice"
)

// # Dashboard

type statCard struct {
	Label  string
	Value  string
	Detail string
}

type typeOption struct {
	Value    string
	Label    string
	Selected bool
}

type urlTable struct {
	Options []typeOption
	Type    string
	Search  string
	Total   int
	Matches int
	Rows    []urlmap.Entry
	Pager   pager
}

type previewCard struct {
	Name        string
	Description string
	Price       string
	Article     string
	Category    string
}

type dashboardPage struct {
	Stats     []statCard
	Mappings  []report.CategoryRow
	Dropped   []report.CategoryRow
	Patterns  []report.URLPattern
	URLs      urlTable
	Preview   []previewCard
	Tabs      []langTab
	ReportURL string
}

func (handler *Handler) dashboard(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	overview := handler.deps.Reports.Overview()

	handler.render(writer, request, http.StatusOK, "dashboard", "Migration Dashboard", dashboardPage{
		Stats:     statCards(overview.Summary),
		Mappings:  overview.Mappings,
		Dropped:   overview.Dropped,
		Patterns:  report.URLPatterns,
		URLs:      handler.urlTable(request.URL.Path, query),
		Preview:   handler.preview(previewLang(query)),
		Tabs:      langTabs(request.URL.Path, query, "preview", previewLang(query), []catalog.Lang{catalog.LangNL, catalog.LangEN, catalog.LangDE}, catalog.Lang.NativeName),
		ReportURL: handler.path("/report.pdf"),
	})
}

func statCards(summary report.Summary) []statCard {
	cards := []statCard{
		{Label: "Products", Value: numfmt.IntOrDash(summary.TreeProducts), Detail: "Awaiting data"},
		{Label: "Categories", Value: numfmt.IntOrDash(summary.NewCategories), Detail: "Awaiting data"},
		{Label: "URL Redirects", Value: numfmt.IntOrDash(summary.Redirects), Detail: "Awaiting data"},
		{Label: "Languages", Value: "3", Detail: "NL / EN / DE"},
	}

	if summary.UniqueProducts > 0 {
		cards[0].Detail = numfmt.Int(summary.UniqueProducts) + " unique in URL mapping"
	}
	if summary.NewCategories > 0 {
		cards[1].Detail = numfmt.Int(summary.OldCategories) + " legacy categories"
	}
	if summary.Redirects > 0 {
		cards[2].Detail = "total redirects configured"
	}
	return cards
}

func (handler *Handler) urlTable(path string, query url.Values) urlTable {
	entries := handler.deps.Snapshot.URLs
	filter := urlmap.URLFilter{
		Type:   urlmap.Type(query.Get("type")),
		Search: query.Get("q"),
	}
	if filter.AllTypes() {
		filter.Type = ""
	}

	counts := urlmap.CountByType(entries)
	options := []typeOption{{Value: "", Label: "All types (" + numfmt.Int(len(entries)) + ")", Selected: filter.Type == ""}}
	for _, t := range urlmap.KnownTypes {
		options = append(options, typeOption{
			Value:    string(t),
			Label:    t.Label() + " (" + numfmt.Int(counts[t]) + ")",
			Selected: filter.Type == t,
		})
	}

	matches := urlmap.Filter(entries, filter)
	rows, meta := pagination.Window(matches, pageParams(query, constants.PageSize))

	return urlTable{
		Options: options,
		Type:    string(filter.Type),
		Search:  filter.Search,
		Total:   len(entries),
		Matches: len(matches),
		Rows:    rows,
		Pager:   newPager(path, query, meta),
	}
}

func previewLang(query url.Values) catalog.Lang {
	if lang, ok := catalog.ParseLang(query.Get("preview")); ok {
		return lang
	}
	return catalog.LangNL
}

func (handler *Handler) preview(lang catalog.Lang) []previewCard {
	samples := report.SampleProducts(handler.deps.Snapshot.Categories, constants.PreviewProducts)

	cards := make([]previewCard, 0, len(samples))
	for _, sample := range samples {
		cards = append(cards, previewCard{
			Name:        sample.Product.Name.In(lang),
			Description: sample.Product.Description.In(lang),
			Price:       sample.Product.Price,
			Article:     sample.Product.ArticleNumber,
			Category:    sample.Category,
		})
	}
	return cards
}

// # Categories

type categoriesPage struct {
	Categories []catalog.EnrichedCategory
	Totals     catalog.Totals
}

func (handler *Handler) categories(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	handler.render(writer, request, http.StatusOK, "categories", "Categories", categoriesPage{
		Categories: handler.deps.Catalog.ListCategories(ctx),
		Totals:     handler.deps.Catalog.Totals(ctx),
	})
}

type categoryPage struct {
	Category      catalog.EnrichedCategory
	Subcategories []catalog.EnrichedSubcategory
	Products      []catalog.EnrichedProduct
	ShowEmpty     bool
	ToggleURL     string
}

func (handler *Handler) category(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.deps.Catalog.GetCategory(request.Context(), requestutil.Param(request, "categorySlug"))
	if err != nil {
		handler.lookupFailed(writer, request, err)
		return
	}

	query := request.URL.Query()
	showEmpty := convert.ToBool(query.Get("show_empty"))

	subcategories := detail.Category.Subcategories
	if !showEmpty {
		subcategories = make([]catalog.EnrichedSubcategory, 0, len(subcategories))
		for _, subcategory := range detail.Category.Subcategories {
			if !subcategory.IsEmpty() {
				subcategories = append(subcategories, subcategory)
			}
		}
	}

	toggle := "1"
	if showEmpty {
		toggle = ""
	}

	handler.render(writer, request, http.StatusOK, "category", detail.Category.Name.EN, categoryPage{
		Category:      detail.Category,
		Subcategories: subcategories,
		Products:      detail.Products,
		ShowEmpty:     showEmpty,
		ToggleURL:     link(request.URL.Path, with(query, "show_empty", toggle)),
	})
}

type description struct {
	Label string
	Text  string
}

type subcategoryPage struct {
	Category       catalog.EnrichedCategory
	Subcategory    catalog.EnrichedSubcategory
	Products       []catalog.EnrichedProduct
	HasDescription bool
	Descriptions   []description
	CategoryURL    string
}

func (handler *Handler) subcategory(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.deps.Catalog.GetSubcategory(request.Context(),
		requestutil.Param(request, "categorySlug"),
		requestutil.Param(request, "subcategorySlug"),
	)
	if err != nil {
		handler.lookupFailed(writer, request, err)
		return
	}

	handler.render(writer, request, http.StatusOK, "subcategory", detail.Subcategory.Name.EN, subcategoryPage{
		Category:       detail.Category,
		Subcategory:    detail.Subcategory,
		Products:       detail.Products,
		HasDescription: !detail.Subcategory.Description.IsBlank(),
		Descriptions:   descriptions(detail.Subcategory.Description),
		CategoryURL:    handler.path("/categories/" + detail.Category.Slug),
	})
}

// descriptions lists a text in English, Dutch and German with a placeholder
// for each missing translation.
func descriptions(text catalog.MultiLang) []description {
	out := make([]description, 0, len(catalog.Langs))
	for _, lang := range catalog.Langs {
		value := text.In(lang)
		if value == "" {
			value = "No " + lang.Label() + " description"
		}
		out = append(out, description{Label: lang.Label(), Text: value})
	}
	return out
}

// # Products

type toggle struct {
	Label  string
	Count  int
	Active bool
	Kind   string
	URL    string
}

type productsPage struct {
	Total      int
	Search     string
	Category   string
	Categories []catalog.EnrichedCategory
	Lang       catalog.Lang
	LangTabs   []langTab
	Toggles    []toggle
	Hidden     map[string]string
	Rows       []catalog.EnrichedProduct
	Pager      pager
}

func (handler *Handler) products(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	query := request.URL.Query()
	path := request.URL.Path

	filters := catalog.FiltersFromRequest(request)
	lang := catalog.ResolveLang(query.Get("lang"), request.Header.Get(constants.HeaderAcceptLanguage))
	stats := handler.deps.Catalog.Quality(ctx)

	matches := handler.deps.Catalog.ListProducts(ctx, filters)
	rows, meta := pagination.Window(matches, pageParams(query, constants.PageSize))

	flip := func(key string, active bool) string {
		value := "1"
		if active {
			value = ""
		}
		return link(path, with(with(query, key, value), "page", ""))
	}

	handler.render(writer, request, http.StatusOK, "products", "Products", productsPage{
		Total:      handler.deps.Catalog.CountProducts(ctx),
		Search:     filters.Search,
		Category:   filters.CategorySlug,
		Categories: handler.deps.Catalog.ListCategories(ctx),
		Lang:       lang,
		LangTabs: langTabs(path, query, "lang", lang, catalog.Langs, func(l catalog.Lang) string {
			return string(l)
		}),
		Toggles: []toggle{
			{Label: "Missing price", Count: stats.MissingPrice, Active: filters.ShowMissingPrice, Kind: "red", URL: flip("missing_price", filters.ShowMissingPrice)},
			{Label: "Call for price", Count: stats.CallForPrice, Active: filters.ShowCallForPrice, Kind: "amber", URL: flip("call_for_price", filters.ShowCallForPrice)},
			{Label: "Missing description", Count: stats.MissingDescription, Active: filters.ShowMissingDescription, Kind: "slate", URL: flip("missing_description", filters.ShowMissingDescription)},
		},
		Hidden: hiddenInputs(query, "lang", "missing_price", "call_for_price", "missing_description"),
		Rows:   rows,
		Pager:  newPager(path, query, meta),
	})
}

// hiddenInputs carries the given query parameters through a GET form.
func hiddenInputs(query url.Values, keys ...string) map[string]string {
	hidden := make(map[string]string, len(keys))
	for _, key := range keys {
		if value := query.Get(key); value != "" {
			hidden[key] = value
		}
	}
	return hidden
}

type productPage struct {
	Product      catalog.EnrichedProduct
	Price        catalog.Badge
	Flags        []catalog.Badge
	Names        []description
	Descriptions []description
}

func (handler *Handler) product(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.deps.Catalog.GetProduct(request.Context(), requestutil.Param(request, "articleNumber"))
	if err != nil {
		handler.lookupFailed(writer, request, err)
		return
	}

	names := make([]description, 0, len(catalog.Langs))
	for _, lang := range catalog.Langs {
		names = append(names, description{Label: lang.Label(), Text: product.Name.In(lang)})
	}

	price := catalog.PriceBadge(*product)
	flags := slice.Filter(catalog.QualityFlags(*product), func(flag catalog.Badge) bool {
		return flag.Kind != price.Kind
	})

	handler.render(writer, request, http.StatusOK, "product", "#"+product.ArticleNumber, productPage{
		Product:      *product,
		Price:        price,
		Flags:        flags,
		Names:        names,
		Descriptions: descriptions(product.Description),
	})
}

// # Report

// downloadReport streams the PDF. A failed generation is logged by the report
// service and the visitor lands back on the dashboard without a document.
func (handler *Handler) downloadReport(writer http.ResponseWriter, request *http.Request) {
	artifact, err := handler.deps.Reports.Generate(request.Context())
	if err != nil {
		http.Redirect(writer, request, handler.path("/"), http.StatusSeeOther)
		return
	}

	respond.Attachment(writer, report.ContentType, handler.deps.Reports.FileName(), artifact)
}

// lookupFailed renders the 404 page for unknown slugs and article numbers.
func (handler *Handler) lookupFailed(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if errors.As(err, &appError) && appError.HTTPStatus == http.StatusNotFound {
		handler.notFound(writer, request)
		return
	}
	handler.serverError(writer, request, err)
}
