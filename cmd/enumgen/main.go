// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command enumgen generates the methods of the enum types of the
// packages in a directory. It is run through go:generate:
//
//	//go:generate go run cogentcore.org/popup/cmd/enumgen
package main

import (
	"fmt"
	"os"

	"cogentcore.org/popup/enumgen"
	"cogentcore.org/popup/logx"
	"github.com/spf13/cobra"
)

func main() {
	c := enumgen.DefaultConfig()
	var v bool
	cmd := &cobra.Command{
		Use:          "enumgen",
		Short:        "Generate methods for enum types",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(false, v, false)
			logx.SetDefaultLogger()
			return enumgen.Generate(c)
		},
	}
	cmd.Flags().StringVar(&c.Dir, "dir", c.Dir, "the source directory to run enumgen on; all packages under it are processed")
	cmd.Flags().StringVar(&c.Output, "output", c.Output, "the output file name in each package")
	cmd.Flags().BoolVarP(&v, "verbose", "v", false, "show the generated files")
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
