// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"

	"golang.org/x/text/language"
)

// supported mirrors the matcher tag order. English comes first as the fallback.
var (
	supported = []Lang{LangEN, LangNL, LangDE}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Dutch, language.German})
)

// ParseLang accepts "nl", "en" or "de" in any case.
func ParseLang(value string) (Lang, bool) {
	switch lang := Lang(strings.ToLower(strings.TrimSpace(value))); lang {
	case LangNL, LangEN, LangDE:
		return lang, true
	default:
		return "", false
	}
}

// NegotiateLang picks the best catalog language for an Accept-Language header.
func NegotiateLang(acceptLanguage string) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LangEN
	}

	_, position, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return LangEN
	}
	return supported[position]
}

// ResolveLang prefers an explicit value and falls back to negotiation.
func ResolveLang(explicit, acceptLanguage string) Lang {
	if lang, ok := ParseLang(explicit); ok {
		return lang
	}
	return NegotiateLang(acceptLanguage)
}
