// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/popup/base/errors"
	"cogentcore.org/popup/scenario"
	"github.com/spf13/cobra"
)

func computeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "compute <scenario>...",
		Short: "Print the position of the popup of each scenario",
		Long: `Compute runs one positioning pass for each scenario and prints the result.
Arguments may be glob patterns; ** matches any number of directories.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			for _, a := range args {
				fs, err := scenario.Glob(a)
				if err != nil {
					return err
				}
				files = append(files, fs...)
			}
			if len(files) == 0 {
				return fmt.Errorf("no scenario files match %q", args)
			}
			var reports []*scenario.Report
			for _, fn := range files {
				sc, err := scenario.Open(fn)
				if err != nil {
					return err
				}
				res, err := sc.Compute(cmd.Context())
				if err != nil {
					return fmt.Errorf("%s: %w", fn, err)
				}
				slog.Info("computed", "scenario", sc.Name, "placement", res.Placement)
				reports = append(reports, scenario.NewReport(sc.Name, res))
			}
			if len(reports) == 1 {
				return write(cmd.OutOrStdout(), format, reports[0])
			}
			return write(cmd.OutOrStdout(), format, reports)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format: yaml or json")
	errors.Must(cmd.RegisterFlagCompletionFunc("output", completeFormat))
	return cmd
}
