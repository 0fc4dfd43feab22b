// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fixture

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/migrationboard/internal/platform/dberr"
)

// RowQuerier is the part of a pgx pool the database source needs.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSource reads the documents from the fixture_document table that the
// export job fills. Nothing in this system writes to it.
type PostgresSource struct {
	db RowQuerier
}

// NewPostgresSource constructs a [PostgresSource] over db.
func NewPostgresSource(db RowQuerier) *PostgresSource {
	return &PostgresSource{db: db}
}

const selectDocument = `SELECT document FROM fixture_document WHERE name = $1`

// Read returns the stored JSON document.
func (source *PostgresSource) Read(ctx context.Context, name string) ([]byte, error) {
	var document []byte

	err := source.db.QueryRow(ctx, selectDocument, name).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("fixture: document %s not found in fixture_document", name)
	}
	if err != nil {
		return nil, dberr.Wrap(err, "select fixture document "+name)
	}

	return document, nil
}

// Describe implements [Source].
func (source *PostgresSource) Describe() string {
	return "postgres:fixture_document"
}
