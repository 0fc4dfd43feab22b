// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/fixture"
)

// Status is the outcome of one old category in the new structure.
type Status string

const (
	StatusMatch   Status = "Match"
	StatusRenamed Status = "Renamed"
	StatusDropped Status = "Dropped"
)

// DroppedTarget is where traffic of a dropped category is redirected.
const DroppedTarget = "/producten/"

// CategoryRow is one line of the category restructuring table.
type CategoryRow struct {
	Status Status   `json:"status"`
	Old    []string `json:"old"`
	New    string   `json:"new"`

	// Products is the raw product count summed over the old categories.
	Products int `json:"products"`
	// Subcategories is the new subcategory count for mapped rows and the old
	// subcategory count for dropped rows.
	Subcategories int `json:"subcategories"`
}

// ProductCountsByOldName maps a clean category's Dutch name to its raw
// product count. A repeated name keeps the last category's count.
func ProductCountsByOldName(categories []catalog.CleanCategory) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, category := range categories {
		total := 0
		for _, subcategory := range category.Subcategories {
			total += len(subcategory.Products)
		}
		counts[category.Name.NL] = total
	}
	return counts
}

// SubcategoryCountsByOldName maps a clean category's Dutch name to its
// subcategory count. A repeated name keeps the last category's count.
func SubcategoryCountsByOldName(categories []catalog.CleanCategory) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, category := range categories {
		counts[category.Name.NL] = len(category.Subcategories)
	}
	return counts
}

// DroppedCategories returns the Dutch names of the clean categories that no
// mapping lists as an old category, in fixture order.
func DroppedCategories(snapshot *fixture.Snapshot) []string {
	mapped := make(map[string]struct{})
	for _, mapping := range snapshot.Mappings {
		for _, old := range mapping.Old {
			mapped[old] = struct{}{}
		}
	}

	dropped := make([]string, 0)
	for _, category := range snapshot.Categories {
		if _, ok := mapped[category.Name.NL]; !ok {
			dropped = append(dropped, category.Name.NL)
		}
	}
	return dropped
}

// CategoryRows returns one row per category mapping, in mapping order.
func CategoryRows(snapshot *fixture.Snapshot) []CategoryRow {
	products := ProductCountsByOldName(snapshot.Categories)

	rows := make([]CategoryRow, 0, len(snapshot.Mappings))
	for _, mapping := range snapshot.Mappings {
		row := CategoryRow{
			Status:        StatusRenamed,
			Old:           mapping.Old,
			New:           mapping.New,
			Subcategories: len(mapping.Subcategories),
		}
		if !mapping.IsRename() {
			row.Status = StatusMatch
		}
		for _, old := range mapping.Old {
			row.Products += products[old]
		}
		rows = append(rows, row)
	}
	return rows
}

// DroppedRows returns one row per dropped category.
func DroppedRows(snapshot *fixture.Snapshot) []CategoryRow {
	products := ProductCountsByOldName(snapshot.Categories)
	subcategories := SubcategoryCountsByOldName(snapshot.Categories)

	dropped := DroppedCategories(snapshot)
	rows := make([]CategoryRow, 0, len(dropped))
	for _, name := range dropped {
		rows = append(rows, CategoryRow{
			Status:        StatusDropped,
			Old:           []string{name},
			New:           DroppedTarget,
			Products:      products[name],
			Subcategories: subcategories[name],
		})
	}
	return rows
}
