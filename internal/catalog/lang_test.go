// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/migrationboard/internal/catalog"
)

func TestResolveLang(t *testing.T) {
	tests := []struct {
		name           string
		explicit       string
		acceptLanguage string
		want           catalog.Lang
	}{
		{"explicit_wins", "de", "nl-NL,nl;q=0.9", catalog.LangDE},
		{"explicit_case_insensitive", "NL", "", catalog.LangNL},
		{"negotiated_dutch", "", "nl-BE,nl;q=0.9,en;q=0.5", catalog.LangNL},
		{"negotiated_german", "", "de-AT", catalog.LangDE},
		{"unsupported_falls_back", "", "ja-JP", catalog.LangEN},
		{"garbage_explicit_negotiates", "fr", "de", catalog.LangDE},
		{"nothing", "", "", catalog.LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ResolveLang(tt.explicit, tt.acceptLanguage))
		})
	}
}

func TestMultiLang_In(t *testing.T) {
	text := ml("Clock", "Klok", "Uhr")

	assert.Equal(t, "Klok", text.In(catalog.LangNL))
	assert.Equal(t, "Uhr", text.In(catalog.LangDE))
	assert.Equal(t, "Clock", text.In(catalog.LangEN))
	assert.Equal(t, "Clock", text.In(""))
}
