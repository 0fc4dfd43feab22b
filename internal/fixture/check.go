// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fixture

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taibuivan/migrationboard/internal/urlmap"
)

// Issue is a consistency warning about a loaded snapshot. Issues never stop
// the dashboard from starting; they are reported by the operator CLI.
type Issue struct {
	Document string
	Message  string
}

func (i Issue) String() string {
	return i.Document + ": " + i.Message
}

// Check cross-references the three documents.
func Check(snapshot *Snapshot) []Issue {
	var issues []Issue
	add := func(document, format string, args ...any) {
		issues = append(issues, Issue{Document: document, Message: fmt.Sprintf(format, args...)})
	}

	known := make(map[string]bool, len(snapshot.Categories))
	for _, category := range snapshot.Categories {
		known[category.Name.NL] = true
		if strings.TrimSpace(category.Name.EN) == "" {
			add(DocumentCategories, "category %q has no English name and gets an empty slug", category.Name.NL)
		}
	}

	for _, mapping := range snapshot.Mappings {
		for _, old := range mapping.Old {
			if !known[old] {
				add(DocumentMappings, "mapping %q lists unknown old category %q", mapping.New, old)
			}
		}
	}

	seen := make(map[string]bool, len(snapshot.URLs))
	for i, entry := range snapshot.URLs {
		if entry.OldURL == "" {
			add(DocumentURLs, "row %d has no old_url", i)
		}
		if seen[entry.OldURL] && entry.OldURL != "" {
			add(DocumentURLs, "duplicate old_url %s", entry.OldURL)
		}
		seen[entry.OldURL] = true

		if entry.Type == urlmap.TypeProduct && entry.ArticleNumber == "" {
			add(DocumentURLs, "product row %s has no article_number", entry.OldURL)
		}
		if !slices.Contains(urlmap.KnownTypes, entry.Type) && entry.Type != urlmap.TypeCategory {
			add(DocumentURLs, "row %s has unknown type %q", entry.OldURL, entry.Type)
		}
	}

	return issues
}
