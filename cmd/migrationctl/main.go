// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command migrationctl is the operator companion of the dashboard. It reads
// the same fixtures as the server and prints the migration figures, checks
// the fixtures for consistency or writes the PDF report to disk.
//
// Usage:
//
//	migrationctl stats [--json]
//	migrationctl validate
//	migrationctl report -o antiquewarehouse-migration-report.pdf
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/migrationboard/internal/fixture"
	"github.com/taibuivan/migrationboard/internal/platform/config"
	"github.com/taibuivan/migrationboard/internal/platform/constants"
	pgstore "github.com/taibuivan/migrationboard/internal/platform/postgres"
	"github.com/taibuivan/migrationboard/internal/report"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the flags shared by every subcommand.
type options struct {
	fixtureDir  string
	databaseURL string
	verbose     bool

	cfg *config.Config
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "migrationctl",
		Short:         "Inspect the catalog migration fixtures",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if opts.fixtureDir == "" {
				opts.fixtureDir = cfg.FixtureDir
			}
			if opts.databaseURL == "" {
				opts.databaseURL = cfg.DatabaseURL
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.fixtureDir, "fixtures", "", "fixture directory (default $FIXTURE_DIR)")
	root.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "read fixtures from PostgreSQL instead (default $DATABASE_URL)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log fixture loading to stderr")

	root.AddCommand(
		newStatsCommand(opts),
		newValidateCommand(opts),
		newReportCommand(opts),
	)
	return root
}

func (opts *options) logger(cmd *cobra.Command) *slog.Logger {
	if !opts.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}

// load reads the snapshot from PostgreSQL when a database URL is given and
// from the fixture directory otherwise.
func (opts *options) load(cmd *cobra.Command) (*fixture.Snapshot, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), constants.StartupTimeout)
	defer cancel()

	logger := opts.logger(cmd)

	if opts.databaseURL != "" {
		pool, err := pgstore.NewPool(ctx, opts.databaseURL, logger)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return fixture.Load(ctx, fixture.NewPostgresSource(pool), logger)
	}

	if opts.fixtureDir == "" {
		return nil, fmt.Errorf("no fixture source: set --fixtures or --database-url")
	}
	return fixture.Load(ctx, fixture.NewDirSource(opts.fixtureDir), logger)
}

func (opts *options) meta() report.Meta {
	return report.Meta{
		Catalog:        opts.cfg.CatalogName,
		Title:          opts.cfg.CatalogTitle,
		Domain:         opts.cfg.CatalogDomain,
		SourcePlatform: opts.cfg.SourcePlatform,
		TargetPlatform: opts.cfg.TargetPlatform,
	}
}
