// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Type represents a parsed enum type.
type Type struct {

	// Name is the name of the type.
	Name string

	// Config is the configuration set in the directive of the type.
	Config *TypeConfig

	// Values are the values of the type, sorted by value.
	Values []Value
}

// Value represents a declared constant.
type Value struct {

	// OriginalName is the name of the constant before transformation.
	OriginalName string

	// Name is the name after trimming, prefixing and transformation.
	Name string

	// Desc is the doc comment of the constant.
	Desc string

	// Value is the value of the constant.
	Value int64
}

// Transform applies the trimming, prefixing and transformation of
// the [TypeConfig] to the value names.
func (t *Type) Transform() error {
	var fn func(string) string
	switch t.Config.Transform {
	case "":
	case "lower":
		fn = strings.ToLower
	case "upper":
		fn = strings.ToUpper
	case "kebab":
		fn = func(s string) string { return delimited(s, '-') }
	case "snake":
		fn = func(s string) string { return delimited(s, '_') }
	default:
		return fmt.Errorf("enumgen: %s: unknown transformation method %q", t.Name, t.Config.Transform)
	}
	for i := range t.Values {
		v := &t.Values[i]
		if t.Config.TrimPrefix != "" {
			for _, prefix := range strings.Split(t.Config.TrimPrefix, ",") {
				v.Name = strings.TrimPrefix(v.Name, prefix)
			}
		}
		v.Name = t.Config.AddPrefix + v.Name
		if fn != nil {
			v.Name = fn(v.Name)
		}
		if v.Name == "" {
			return fmt.Errorf("enumgen: %s: name of %s is empty after transformation", t.Name, v.OriginalName)
		}
	}
	return nil
}

// delimited converts a CamelCase name to lowercase words
// joined by the given delimiter.
func delimited(s string, delim rune) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1])
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if prevLower || (nextLower && unicode.IsUpper(rs[i-1])) {
				b.WriteRune(delim)
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// N returns the highest value plus one.
func (t *Type) N() int64 {
	return t.Values[len(t.Values)-1].Value + 1
}

// ValueList returns the values as a Go list.
func (t *Type) ValueList() string {
	return t.join(func(v Value) string { return strconv.FormatInt(v.Value, 10) })
}

// ValueMap returns the name to value map as Go map entries.
func (t *Type) ValueMap() string {
	return t.join(func(v Value) string { return quote(v.Name) + ": " + strconv.FormatInt(v.Value, 10) })
}

// NameMap returns the value to name map as Go map entries.
func (t *Type) NameMap() string {
	return t.join(func(v Value) string { return strconv.FormatInt(v.Value, 10) + ": " + quote(v.Name) })
}

// DescMap returns the value to description map as Go map entries.
func (t *Type) DescMap() string {
	return t.join(func(v Value) string { return strconv.FormatInt(v.Value, 10) + ": " + quote(v.Desc) })
}

func (t *Type) join(fn func(v Value) string) string {
	strs := make([]string, len(t.Values))
	for i, v := range t.Values {
		strs[i] = fn(v)
	}
	return strings.Join(strs, ", ")
}

// quote returns s as a raw string literal when possible.
func quote(s string) string {
	if strings.ContainsRune(s, '`') {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}
