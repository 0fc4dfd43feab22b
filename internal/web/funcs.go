// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package web

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/report"
	"github.com/taibuivan/migrationboard/internal/urlmap"
	"github.com/taibuivan/migrationboard/pkg/convert"
	"github.com/taibuivan/migrationboard/pkg/numfmt"
	"github.com/taibuivan/migrationboard/pkg/pagination"
)

var templateFuncs = template.FuncMap{
	"num":       numfmt.Int,
	"numOrDash": numfmt.IntOrDash,
	"dash": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return report.Dash
		}
		return s
	},
	"in":           func(text catalog.MultiLang, lang catalog.Lang) string { return text.In(lang) },
	"priceBadge":   catalog.PriceBadge,
	"flags":        catalog.QualityFlags,
	"join":         strings.Join,
	"upper":        strings.ToUpper,
	"typeLabel":    func(t urlmap.Type) string { return t.Label() },
	"typeClass":    typeClass,
	"productTable": newProductTable,
}

// productTable feeds the shared product list partial.
type productTable struct {
	Base string
	Rows []catalog.EnrichedProduct
}

func newProductTable(base string, rows []catalog.EnrichedProduct) productTable {
	return productTable{Base: base, Rows: rows}
}

// typeClass is the badge colour of a redirect type.
func typeClass(t urlmap.Type) string {
	switch t {
	case urlmap.TypeProduct, urlmap.TypeSubcategory:
		return "green"
	case urlmap.TypePagination:
		return "amber"
	}
	return "red"
}

// # Links

// link builds path?query with empty values dropped.
func link(path string, query url.Values) string {
	clean := url.Values{}
	for key, values := range query {
		for _, value := range values {
			if value != "" {
				clean.Add(key, value)
			}
		}
	}
	if len(clean) == 0 {
		return path
	}
	return path + "?" + clean.Encode()
}

// with returns a copy of query with key set to value. An empty value removes
// the key.
func with(query url.Values, key, value string) url.Values {
	clone := url.Values{}
	for k, v := range query {
		clone[k] = append([]string(nil), v...)
	}
	if value == "" {
		clone.Del(key)
	} else {
		clone.Set(key, value)
	}
	return clone
}

// pager is the "Page X of Y" control.
type pager struct {
	pagination.Meta
	PrevURL string
	NextURL string
}

func newPager(path string, query url.Values, meta pagination.Meta) pager {
	p := pager{Meta: meta}
	if meta.HasPrev() {
		p.PrevURL = link(path, with(query, "page", pageParam(meta.Page-1)))
	}
	if meta.HasNext() {
		p.NextURL = link(path, with(query, "page", pageParam(meta.Page+1)))
	}
	return p
}

// pageParam leaves page 1 out of the URL.
func pageParam(page int) string {
	if page <= 1 {
		return ""
	}
	return strconv.Itoa(page)
}

// pageParams reads the page number; the page size is fixed.
func pageParams(query url.Values, size int) pagination.Params {
	return pagination.Params{Page: max(convert.ToIntD(query.Get("page"), 1), 1), Limit: size}
}

// langTab is one entry of a language switcher.
type langTab struct {
	Lang   catalog.Lang
	Label  string
	URL    string
	Active bool
}

func langTabs(path string, query url.Values, key string, current catalog.Lang, order []catalog.Lang, label func(catalog.Lang) string) []langTab {
	tabs := make([]langTab, 0, len(order))
	for _, lang := range order {
		tabs = append(tabs, langTab{
			Lang:   lang,
			Label:  label(lang),
			URL:    link(path, with(query, key, string(lang))),
			Active: lang == current,
		})
	}
	return tabs
}
