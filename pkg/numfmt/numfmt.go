// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package numfmt formats counts for display in the dashboard and the report.
package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// displayTag is the locale used for digit grouping ("1,234").
var displayTag = language.BritishEnglish

// Int formats n with thousands separators.
func Int(n int) string {
	return message.NewPrinter(displayTag).Sprintf("%d", n)
}

// IntOrDash formats n, or returns an em dash when n is not positive.
func IntOrDash(n int) string {
	if n <= 0 {
		return "—"
	}
	return Int(n)
}
