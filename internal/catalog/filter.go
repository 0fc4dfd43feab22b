// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"

	"github.com/taibuivan/migrationboard/pkg/slice"
)

// # Price and Content Classification

// IsMissingPrice reports whether the trimmed price is empty, "€" or "€0".
func IsMissingPrice(product EnrichedProduct) bool {
	price := strings.TrimSpace(product.Price)
	return price == "" || price == "€" || price == "€0"
}

// IsCallForPrice reports whether the price asks the buyer to call ("bel ons").
//
// It is evaluated independently of [IsMissingPrice].
func IsCallForPrice(product EnrichedProduct) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(product.Price)), "bel ons")
}

// IsMissingDescription reports whether no language has a description.
func IsMissingDescription(product EnrichedProduct) bool {
	return product.Description.IsBlank()
}

// HasPrice reports whether the product shows a real price.
func HasPrice(product EnrichedProduct) bool {
	return !IsMissingPrice(product) && !IsCallForPrice(product)
}

// Badge is a data-quality label shown next to a product.
type Badge struct {
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

// Badge kinds.
const (
	BadgePrice              = "price"
	BadgeMissingPrice       = "missing_price"
	BadgeCallForPrice       = "call_for_price"
	BadgeMissingDescription = "missing_description"
)

// PriceBadge returns the price label: "No price", "Call for price" or the
// trimmed price itself.
func PriceBadge(product EnrichedProduct) Badge {
	switch {
	case IsMissingPrice(product):
		return Badge{Label: "No price", Kind: BadgeMissingPrice}
	case IsCallForPrice(product):
		return Badge{Label: "Call for price", Kind: BadgeCallForPrice}
	default:
		return Badge{Label: strings.TrimSpace(product.Price), Kind: BadgePrice}
	}
}

// QualityFlags returns the data-quality problems of a product: "No price" or
// "Call for price", then "No description". A product without problems has no
// flags.
func QualityFlags(product EnrichedProduct) []Badge {
	badges := make([]Badge, 0, 2)
	if price := PriceBadge(product); price.Kind != BadgePrice {
		badges = append(badges, price)
	}
	if IsMissingDescription(product) {
		badges = append(badges, Badge{Label: "No description", Kind: BadgeMissingDescription})
	}
	return badges
}

// # Product Filtering

// ProductFilters selects products. Every set field narrows the result.
type ProductFilters struct {
	Search                 string
	CategorySlug           string
	ShowMissingPrice       bool
	ShowCallForPrice       bool
	ShowMissingDescription bool
}

// FilterProducts applies the filters as a logical AND, in order: text search
// over the three names and the article number, category, missing price, call
// for price, missing description.
func FilterProducts(products []EnrichedProduct, filters ProductFilters) []EnrichedProduct {
	result := products

	if filters.Search != "" {
		query := strings.ToLower(filters.Search)
		result = slice.Filter(result, func(product EnrichedProduct) bool {
			return strings.Contains(strings.ToLower(product.Name.EN), query) ||
				strings.Contains(strings.ToLower(product.Name.NL), query) ||
				strings.Contains(strings.ToLower(product.Name.DE), query) ||
				strings.Contains(strings.ToLower(product.ArticleNumber), query)
		})
	}

	if filters.CategorySlug != "" {
		result = slice.Filter(result, func(product EnrichedProduct) bool {
			return product.CategorySlug == filters.CategorySlug
		})
	}

	if filters.ShowMissingPrice {
		result = slice.Filter(result, IsMissingPrice)
	}

	if filters.ShowCallForPrice {
		result = slice.Filter(result, IsCallForPrice)
	}

	if filters.ShowMissingDescription {
		result = slice.Filter(result, IsMissingDescription)
	}

	return result
}
