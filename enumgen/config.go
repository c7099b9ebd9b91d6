// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Config contains the configuration information used by enumgen.
type Config struct {

	// Dir is the source directory to run enumgen on; all packages under it are processed.
	Dir string

	// Output is the output file location relative to each package.
	Output string
}

// DefaultConfig returns the default [Config].
func DefaultConfig() *Config {
	return &Config{Dir: ".", Output: "enumgen.go"}
}

// TypeConfig is the configuration of a single enum type,
// set by the flags of its [Directive].
type TypeConfig struct {

	// TrimPrefix is a comma-separated list of prefixes to trim from each item.
	TrimPrefix string

	// AddPrefix is the prefix to add to each item.
	AddPrefix string

	// Transform is the item transformation method (lower, upper, kebab, snake).
	Transform string
}

// ParseDirective parses the flags of the given [Directive] comment.
func ParseDirective(text string) (*TypeConfig, error) {
	args := strings.Fields(strings.TrimPrefix(text, Directive))
	c := &TypeConfig{}
	fs := flag.NewFlagSet("enums:enum", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&c.TrimPrefix, "trim-prefix", "", "")
	fs.StringVar(&c.AddPrefix, "add-prefix", "", "")
	fs.StringVar(&c.Transform, "transform", "", "")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", text, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("parsing %q: unexpected arguments %v", text, fs.Args())
	}
	return c, nil
}
