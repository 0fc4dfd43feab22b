// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from catalog names.
//
// # Usage
//
// Slugs are the path segments of the category and subcategory pages
// (e.g., "antique-clocks-watches"). They are derived from the English name only.
package slug

import (
	"regexp"
	"strings"
)

// nonAlphanumeric matches any run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// From converts a name into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Converts to lowercase.
// 2. Replaces every run of non [a-z0-9] characters with a single hyphen.
// 3. Trims leading/trailing hyphens.
//
// Accented letters are not folded: "Café" becomes "caf". The output is stable
// for a given input and From(From(s)) == From(s).
func From(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Valid reports whether s is already in slug form.
func Valid(s string) bool {
	return s != "" && From(s) == s
}
