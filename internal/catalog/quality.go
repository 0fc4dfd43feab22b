// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "github.com/taibuivan/migrationboard/pkg/slice"

// QualityStats counts data-quality problems over the de-duplicated products.
type QualityStats struct {
	Total              int `json:"total"`
	MissingPrice       int `json:"missingPrice"`
	CallForPrice       int `json:"callForPrice"`
	MissingDescription int `json:"missingDescription"`
}

// QualityStats classifies every product with the same predicates the product
// filters use.
func (index *Index) QualityStats() QualityStats {
	return QualityStats{
		Total:              len(index.products),
		MissingPrice:       slice.Count(index.products, IsMissingPrice),
		CallForPrice:       slice.Count(index.products, IsCallForPrice),
		MissingDescription: slice.Count(index.products, IsMissingDescription),
	}
}
