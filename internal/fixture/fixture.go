// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fixture loads the three migration documents the dashboard is built
// from: the URL redirect list, the category mapping and the cleaned category
// tree.
//
// # Lifecycle
//
// A [Snapshot] is loaded once at startup and never mutated. Every view, the
// JSON API and the PDF report read from the same snapshot.
package fixture

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/urlmap"
)

// Document names, shared by the directory and the database sources.
const (
	DocumentURLs       = "url-mapping.json"
	DocumentMappings   = "category-mapping.json"
	DocumentCategories = "categories-clean.json"
)

// Documents lists the document names in load order.
var Documents = []string{DocumentURLs, DocumentMappings, DocumentCategories}

// Snapshot is the decoded content of the three documents.
type Snapshot struct {
	URLs       []urlmap.Entry
	Mappings   []catalog.CategoryMapping
	Categories []catalog.CleanCategory

	// Fingerprint is a hex SHA-256 over the raw documents. It changes whenever
	// any fixture changes and keys cached report artifacts.
	Fingerprint string
}

// Source reads the raw documents from wherever they are kept.
type Source interface {
	// Read returns the raw bytes of the named document.
	Read(ctx context.Context, name string) ([]byte, error)
	// Describe names the source for logs.
	Describe() string
}

// Load reads and decodes every document from source.
//
// A document that is not valid JSON, or whose top level has the wrong shape,
// fails the whole load. Missing fields inside a record decode to zero values.
// Flat categories are normalised to the two-level shape.
func Load(ctx context.Context, source Source, logger *slog.Logger) (*Snapshot, error) {
	start := time.Now()

	raw := make(map[string][]byte, len(Documents))
	for _, name := range Documents {
		data, err := source.Read(ctx, name)
		if err != nil {
			return nil, err
		}
		raw[name] = data
	}

	snapshot, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "fixtures_loaded",
		slog.String("source", source.Describe()),
		slog.Int("urls", len(snapshot.URLs)),
		slog.Int("mappings", len(snapshot.Mappings)),
		slog.Int("categories", len(snapshot.Categories)),
		slog.String("fingerprint", snapshot.Fingerprint[:12]),
		slog.Duration("took", time.Since(start)),
	)

	return snapshot, nil
}

// Decode builds a snapshot from raw documents keyed by name.
func Decode(raw map[string][]byte) (*Snapshot, error) {
	snapshot := &Snapshot{}

	if err := decodeDocument(raw, DocumentURLs, &snapshot.URLs); err != nil {
		return nil, err
	}
	if err := decodeDocument(raw, DocumentMappings, &snapshot.Mappings); err != nil {
		return nil, err
	}
	if err := decodeDocument(raw, DocumentCategories, &snapshot.Categories); err != nil {
		return nil, err
	}

	for i, category := range snapshot.Categories {
		snapshot.Categories[i] = category.Normalized()
	}

	snapshot.Fingerprint = fingerprint(raw)
	return snapshot, nil
}

func decodeDocument(raw map[string][]byte, name string, target any) error {
	data, ok := raw[name]
	if !ok {
		return fmt.Errorf("fixture: document %s is missing", name)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("fixture: decode %s: %w", name, err)
	}
	return nil
}

func fingerprint(raw map[string][]byte) string {
	hash := sha256.New()
	for _, name := range Documents {
		hash.Write([]byte(name))
		hash.Write([]byte{0})
		hash.Write(raw[name])
		hash.Write([]byte{0})
	}
	return hex.EncodeToString(hash.Sum(nil))
}
