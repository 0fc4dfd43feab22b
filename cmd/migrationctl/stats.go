// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/report"
	"github.com/taibuivan/migrationboard/internal/urlmap"
	"github.com/taibuivan/migrationboard/pkg/numfmt"
)

type statsOutput struct {
	Summary report.Summary       `json:"summary"`
	Quality catalog.QualityStats `json:"quality"`
	URLs    map[urlmap.Type]int  `json:"urls"`
	Dropped []string             `json:"dropped"`
}

func newStatsCommand(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the migration figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := opts.load(cmd)
			if err != nil {
				return err
			}

			out := statsOutput{
				Summary: report.Summarize(snapshot),
				Quality: catalog.BuildIndex(snapshot.Categories).QualityStats(),
				URLs:    urlmap.CountByType(snapshot.URLs),
				Dropped: report.DroppedCategories(snapshot),
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(out)
			}
			printStats(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func printStats(w io.Writer, out statsOutput) {
	heading := color.New(color.Bold)
	value := color.New(color.FgCyan)
	warn := color.New(color.FgYellow)

	line := func(label string, v string) {
		fmt.Fprintf(w, "  %-22s %s\n", label, value.Sprint(v))
	}

	summary := out.Summary
	heading.Fprintln(w, "Catalog")
	line("Products (tree)", numfmt.Int(summary.TreeProducts))
	line("Products (unique URLs)", numfmt.Int(summary.UniqueProducts))
	line("Categories", fmt.Sprintf("%d -> %d", summary.OldCategories, summary.NewCategories))
	line("Subcategories", fmt.Sprintf("%d -> %d", summary.OldSubcategories, summary.NewSubcategories))
	line("Languages", numfmt.Int(summary.Languages))

	heading.Fprintln(w, "Redirects")
	line("Total", numfmt.Int(summary.Redirects))
	for _, t := range urlmap.KnownTypes {
		line(t.Label(), numfmt.Int(out.URLs[t]))
	}

	heading.Fprintln(w, "Data quality")
	line("Missing price", numfmt.Int(out.Quality.MissingPrice))
	line("Call for price", numfmt.Int(out.Quality.CallForPrice))
	line("Missing description", numfmt.Int(out.Quality.MissingDescription))

	if len(out.Dropped) > 0 {
		heading.Fprintln(w, "Dropped categories")
		for _, name := range out.Dropped {
			warn.Fprintf(w, "  %s -> %s\n", name, report.DroppedTarget)
		}
	}
}
