// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/taibuivan/migrationboard/internal/fixture"
	"github.com/taibuivan/migrationboard/internal/platform/constants"
	"github.com/taibuivan/migrationboard/internal/platform/ctxutil"
)

// Service produces the migration report for one snapshot.
type Service struct {
	snapshot *fixture.Snapshot
	meta     Meta
	cache    Cache
	cacheTTL time.Duration
	logger   *slog.Logger

	now    func() time.Time
	render func(*Document, io.Writer) error
}

// NewService constructs a report [Service]. A nil cache or a zero TTL turns
// caching off.
func NewService(snapshot *fixture.Snapshot, meta Meta, cache Cache, cacheTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		snapshot: snapshot,
		meta:     meta,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
		render:   RenderPDF,
	}
}

// FileName is the download name of the report.
func (service *Service) FileName() string {
	return service.meta.Catalog + constants.ReportFileSuffix
}

// Summary returns the headline figures.
func (service *Service) Summary() Summary {
	return Summarize(service.snapshot)
}

// Overview is the category restructuring data shared by the dashboard and the
// JSON API.
type Overview struct {
	Summary  Summary       `json:"summary"`
	Mappings []CategoryRow `json:"mappings"`
	Dropped  []CategoryRow `json:"dropped"`
}

// Overview returns the summary and the category restructuring rows.
func (service *Service) Overview() Overview {
	return Overview{
		Summary:  Summarize(service.snapshot),
		Mappings: CategoryRows(service.snapshot),
		Dropped:  DroppedRows(service.snapshot),
	}
}

/*
Generate renders the complete PDF in memory.

The artifact is all or nothing: any failure, including a panic inside the
renderer, is logged as report_generation_failed and returned without partial
output. There is no retry.
*/
func (service *Service) Generate(ctx context.Context) ([]byte, error) {
	logger := ctxutil.GetLoggerOr(ctx, service.logger)
	now := service.now()
	key := CacheKey(service.meta.Catalog, service.snapshot.Fingerprint, now)

	if service.cachingEnabled() {
		artifact, err := service.cache.Get(ctx, key)
		switch {
		case err == nil:
			logger.InfoContext(ctx, "report_cache_hit", slog.Int("bytes", len(artifact)))
			return artifact, nil
		case !errors.Is(err, ErrCacheMiss):
			logger.WarnContext(ctx, "report_cache_unavailable", slog.String("error", err.Error()))
		}
	}

	start := time.Now()
	artifact, err := service.renderSafely(now)
	if err != nil {
		logger.ErrorContext(ctx, "report_generation_failed",
			slog.String("catalog", service.meta.Catalog),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.InfoContext(ctx, "report_generated",
		slog.String("catalog", service.meta.Catalog),
		slog.Int("bytes", len(artifact)),
		slog.Duration("took", time.Since(start)),
	)

	if service.cachingEnabled() {
		if err := service.cache.Set(ctx, key, artifact, service.cacheTTL); err != nil {
			logger.WarnContext(ctx, "report_cache_store_failed", slog.String("error", err.Error()))
		}
	}

	return artifact, nil
}

func (service *Service) renderSafely(now time.Time) (artifact []byte, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			artifact, err = nil, fmt.Errorf("report: render panicked: %v", recovered)
		}
	}()

	var buffer bytes.Buffer
	if err := service.render(Build(service.snapshot, service.meta, now), &buffer); err != nil {
		return nil, fmt.Errorf("report: render: %w", err)
	}
	return buffer.Bytes(), nil
}

func (service *Service) cachingEnabled() bool {
	return service.cache != nil && service.cacheTTL > 0
}
