// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fixture_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/migrationboard/internal/fixture"
	"github.com/taibuivan/migrationboard/internal/urlmap"
)

var discard = slog.New(slog.NewJSONHandler(io.Discard, nil))

const (
	urlsJSON       = `[{"old_url":"/producten/show/1","new_url":"/product/klok/","type":"product","article_number":"1"}]`
	mappingsJSON   = `[{"new":"Klokken","old":["Klokken"]}]`
	categoriesJSON = `[
		{"name":{"nl":"Klokken","en":"Clocks","de":"Uhren"},"subcategories":[{"name":{"nl":"Wandklokken","en":"Wall Clocks","de":"Wanduhren"},"products":[]}]},
		{"name":{"nl":"Lampen","en":"Lamps","de":"Lampen"},"products":[{"articleNumber":"2","price":"€ 10"}]}
	]`
)

func documents() fstest.MapFS {
	return fstest.MapFS{
		fixture.DocumentURLs:       {Data: []byte(urlsJSON)},
		fixture.DocumentMappings:   {Data: []byte(mappingsJSON)},
		fixture.DocumentCategories: {Data: []byte(categoriesJSON)},
	}
}

/*
TestLoad_DirSource decodes all three documents and folds the flat category
into a single implicit subcategory.
*/
func TestLoad_DirSource(t *testing.T) {
	snapshot, err := fixture.Load(context.Background(), fixture.NewFSSource(documents(), "memory"), discard)
	require.NoError(t, err)

	require.Len(t, snapshot.URLs, 1)
	assert.Equal(t, urlmap.TypeProduct, snapshot.URLs[0].Type)
	assert.Equal(t, "1", snapshot.URLs[0].ArticleNumber)

	require.Len(t, snapshot.Mappings, 1)
	assert.Equal(t, []string{"Klokken"}, snapshot.Mappings[0].Old)

	require.Len(t, snapshot.Categories, 2)
	lamps := snapshot.Categories[1]
	require.Len(t, lamps.Subcategories, 1)
	assert.Equal(t, "Lamps", lamps.Subcategories[0].Name.EN)
	assert.Equal(t, "2", lamps.Subcategories[0].Products[0].ArticleNumber)
	assert.Nil(t, lamps.Products)

	assert.Len(t, snapshot.Fingerprint, 64)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(fstest.MapFS)
		message string
	}{
		{
			name:    "malformed_document",
			mutate:  func(fs fstest.MapFS) { fs[fixture.DocumentMappings] = &fstest.MapFile{Data: []byte(`{"new":`)} },
			message: "fixture: decode category-mapping.json",
		},
		{
			name:    "wrong_top_level_shape",
			mutate:  func(fs fstest.MapFS) { fs[fixture.DocumentURLs] = &fstest.MapFile{Data: []byte(`{"old_url":"/"}`)} },
			message: "fixture: decode url-mapping.json",
		},
		{
			name:    "missing_file",
			mutate:  func(fs fstest.MapFS) { delete(fs, fixture.DocumentCategories) },
			message: "fixture: read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := documents()
			tt.mutate(fsys)

			_, err := fixture.Load(context.Background(), fixture.NewFSSource(fsys, "memory"), discard)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDecode_FingerprintTracksContent(t *testing.T) {
	raw := map[string][]byte{
		fixture.DocumentURLs:       []byte(urlsJSON),
		fixture.DocumentMappings:   []byte(mappingsJSON),
		fixture.DocumentCategories: []byte(categoriesJSON),
	}

	first, err := fixture.Decode(raw)
	require.NoError(t, err)
	again, err := fixture.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, again.Fingerprint)

	raw[fixture.DocumentURLs] = []byte(`[]`)
	changed, err := fixture.Decode(raw)
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, changed.Fingerprint)
}

/*
TestLoad_BundledFixtures keeps the sample data in the repository loadable.
*/
func TestLoad_BundledFixtures(t *testing.T) {
	snapshot, err := fixture.Load(context.Background(), fixture.NewDirSource("../../data/antiquewarehouse"), discard)
	require.NoError(t, err)

	assert.NotEmpty(t, snapshot.URLs)
	assert.NotEmpty(t, snapshot.Mappings)
	assert.NotEmpty(t, snapshot.Categories)
	assert.Empty(t, fixture.Check(snapshot))
}

// # Postgres source

type fakeRow struct {
	document []byte
	err      error
}

func (row fakeRow) Scan(dest ...any) error {
	if row.err != nil {
		return row.err
	}
	*(dest[0].(*[]byte)) = row.document
	return nil
}

type fakeQuerier struct {
	documents map[string][]byte
	err       error
}

func (querier fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if querier.err != nil {
		return fakeRow{err: querier.err}
	}
	document, ok := querier.documents[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{document: document}
}

func TestPostgresSource(t *testing.T) {
	querier := fakeQuerier{documents: map[string][]byte{
		fixture.DocumentURLs:       []byte(urlsJSON),
		fixture.DocumentMappings:   []byte(mappingsJSON),
		fixture.DocumentCategories: []byte(categoriesJSON),
	}}

	snapshot, err := fixture.Load(context.Background(), fixture.NewPostgresSource(querier), discard)
	require.NoError(t, err)
	assert.Len(t, snapshot.Categories, 2)

	delete(querier.documents, fixture.DocumentMappings)
	_, err = fixture.Load(context.Background(), fixture.NewPostgresSource(querier), discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category-mapping.json not found")

	cause := errors.New("connection reset")
	_, err = fixture.NewPostgresSource(fakeQuerier{err: cause}).Read(context.Background(), fixture.DocumentURLs)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

// # Consistency checks

func TestCheck(t *testing.T) {
	snapshot, err := fixture.Decode(map[string][]byte{
		fixture.DocumentURLs: []byte(`[
			{"old_url":"/a","new_url":"/b","type":"product"},
			{"old_url":"/a","new_url":"/c","type":"redirect"}
		]`),
		fixture.DocumentMappings:   []byte(`[{"new":"Klokken","old":["Klokken","Horloges"]}]`),
		fixture.DocumentCategories: []byte(categoriesJSON),
	})
	require.NoError(t, err)

	var messages []string
	for _, issue := range fixture.Check(snapshot) {
		messages = append(messages, issue.String())
	}

	assert.Equal(t, []string{
		`category-mapping.json: mapping "Klokken" lists unknown old category "Horloges"`,
		`url-mapping.json: product row /a has no article_number`,
		`url-mapping.json: duplicate old_url /a`,
		`url-mapping.json: row /a has unknown type "redirect"`,
	}, messages)
}
