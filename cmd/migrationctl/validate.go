// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/migrationboard/internal/fixture"
)

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the fixtures for consistency",
		Long: `Loads the three fixture documents and cross-references them: categories
without an English name, mappings naming unknown categories, duplicate or
empty legacy URLs, product rows without an article number and unknown
redirect types. Exits non-zero when any issue is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := opts.load(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			issues := fixture.Check(snapshot)
			if len(issues) == 0 {
				color.New(color.FgGreen).Fprintf(w, "OK: %d documents, fingerprint %s\n", len(fixture.Documents), snapshot.Fingerprint[:12])
				return nil
			}

			problem := color.New(color.FgYellow)
			for _, issue := range issues {
				problem.Fprintf(w, "WARN %s\n", issue)
			}
			return fmt.Errorf("%d fixture issue(s)", len(issues))
		},
	}
}
