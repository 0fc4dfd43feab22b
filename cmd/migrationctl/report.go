// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taibuivan/migrationboard/internal/report"
)

func newReportCommand(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the PDF migration report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := opts.load(cmd)
			if err != nil {
				return err
			}

			service := report.NewService(snapshot, opts.meta(), nil, 0, opts.logger(cmd))
			artifact, err := service.Generate(cmd.Context())
			if err != nil {
				return err
			}

			if output == "" {
				output = service.FileName()
			}
			if err := os.WriteFile(output, artifact, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", output, len(artifact))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default <catalog>-migration-report.pdf)")
	return cmd
}
