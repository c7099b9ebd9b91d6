// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides the helper functions called by the
// generated String, SetString and text marshaling methods
// of the enum types used in popup configuration.
package enums

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// String returns the string representation of the given
// enum value with the given map.
func String[T interface {
	Enum
	comparable
}](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// Desc returns the description of the given enum value.
func Desc[T interface {
	Enum
	comparable
}](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message. Matching is case insensitive.
// The error names the closest valid value when there is a plausible one.
func SetString[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	ls := strings.ToLower(s)
	for k, v := range valueMap {
		if strings.ToLower(k) == ls {
			*i = v
			return nil
		}
	}
	if sug := Suggest(s, valueMap); sug != "" {
		return fmt.Errorf("%q is not a valid value for type %s; did you mean %q?", s, typeName, sug)
	}
	return fmt.Errorf("%q is not a valid value for type %s", s, typeName)
}

// suggestThreshold is the minimum Levenshtein similarity for
// a valid name to be suggested in place of an invalid one.
const suggestThreshold = 0.5

// Suggest returns the name in the given map that is most similar
// to s, or "" if none is similar enough.
func Suggest[T any](s string, valueMap map[string]T) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best := ""
	bestSim := 0.0
	for k := range valueMap {
		sim := strutil.Similarity(s, k, lev)
		if sim > bestSim || (sim == bestSim && k < best) {
			best, bestSim = k, sim
		}
	}
	if bestSim < suggestThreshold {
		return ""
	}
	return best
}

// UnmarshalText sets the given enum value from its text representation.
// Invalid text is logged and the value is left unchanged, so that
// configuration with a bad value degrades to the default.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if len(text) == 0 {
		return nil
	}
	if err := i.SetString(string(text)); err != nil {
		slog.Warn("enums.UnmarshalText: invalid value, keeping default", "type", typeName, "err", err)
	}
	return nil
}
