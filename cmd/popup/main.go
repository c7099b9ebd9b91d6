// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command popup computes popup positions for scenario files.
//
//	popup compute scenarios/**/*.yaml
//	popup watch --metrics :9090 menu.toml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"cogentcore.org/popup/base/iox/jsonx"
	"cogentcore.org/popup/base/iox/yamlx"
	"cogentcore.org/popup/logx"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "popup: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var vv, v, q bool
	cmd := &cobra.Command{
		Use:   "popup",
		Short: "Compute anchored popup positions",
		Long: `Popup computes where a floating panel is drawn against its anchor,
for layouts described in scenario files (TOML, YAML or JSON).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	cmd.PersistentFlags().BoolVar(&vv, "vv", false, "show debug messages")
	cmd.PersistentFlags().BoolVarP(&v, "verbose", "v", false, "show info messages")
	cmd.PersistentFlags().BoolVarP(&q, "quiet", "q", false, "only show errors")

	cmd.AddCommand(computeCmd(), watchCmd())
	return cmd
}

// completeFormat completes the values of the output format flags.
func completeFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "json"}, cobra.ShellCompDirectiveNoFileComp
}

// write writes v to w in the given format: yaml or json.
func write(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		return yamlx.Write(v, w)
	case "json":
		return jsonx.Write(v, w)
	}
	return fmt.Errorf("unknown output format %q", format)
}
