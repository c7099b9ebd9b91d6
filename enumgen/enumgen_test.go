// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	c, err := ParseDirective("//enums:enum -trim-prefix Side -transform lower")
	require.NoError(t, err)
	assert.Equal(t, &TypeConfig{TrimPrefix: "Side", Transform: "lower"}, c)

	c, err = ParseDirective("//enums:enum")
	require.NoError(t, err)
	assert.Equal(t, &TypeConfig{}, c)

	_, err = ParseDirective("//enums:enum -bitflag")
	assert.Error(t, err)
	_, err = ParseDirective("//enums:enum lower")
	assert.Error(t, err)
}

func TestTransform(t *testing.T) {
	typ := &Type{
		Name:   "Placement",
		Config: &TypeConfig{Transform: "kebab"},
		Values: []Value{{Name: "BottomStart"}, {Name: "Top"}, {Name: "HTTPStatus"}, {Name: "Level2Cache"}},
	}
	require.NoError(t, typ.Transform())
	names := []string{}
	for _, v := range typ.Values {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"bottom-start", "top", "http-status", "level2-cache"}, names)

	typ = &Type{
		Name:   "Alignment",
		Config: &TypeConfig{TrimPrefix: "Align", AddPrefix: "A", Transform: "snake"},
		Values: []Value{{Name: "AlignCenter"}, {Name: "AlignStart"}},
	}
	require.NoError(t, typ.Transform())
	assert.Equal(t, "a_center", typ.Values[0].Name)

	typ = &Type{Name: "X", Config: &TypeConfig{TrimPrefix: "X"}, Values: []Value{{OriginalName: "X", Name: "X"}}}
	assert.Error(t, typ.Transform())

	typ = &Type{Name: "X", Config: &TypeConfig{Transform: "title"}, Values: []Value{{Name: "A"}}}
	assert.Error(t, typ.Transform())
}

func TestSortValues(t *testing.T) {
	vs := SortValues([]Value{{Name: "b", Value: 2}, {Name: "a", Value: 1}, {Name: "c", Value: 2}, {Name: "z", Value: 0}})
	require.Len(t, vs, 3)
	assert.Equal(t, "z", vs[0].Name)
	assert.Equal(t, "a", vs[1].Name)
	assert.Equal(t, "b", vs[2].Name)
}

func TestMaps(t *testing.T) {
	typ := &Type{Name: "Fruit", Values: []Value{
		{Name: "apple", Desc: "An `apple`.", Value: 0},
		{Name: "banana", Value: 1},
	}}
	assert.Equal(t, int64(2), typ.N())
	assert.Equal(t, "0, 1", typ.ValueList())
	assert.Equal(t, "`apple`: 0, `banana`: 1", typ.ValueMap())
	assert.Equal(t, "0: `apple`, 1: `banana`", typ.NameMap())
	assert.Equal(t, "0: \"An `apple`.\", 1: ``", typ.DescMap())
}

// fruitModule writes a module with one enum type to a temporary
// directory and returns the directory.
func fruitModule(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := t.TempDir()
	write := func(name, src string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0666))
	}
	write("go.mod", "module example.com/fruit\n\ngo 1.21\n")
	write("fruit.go", `package fruit

// Fruit is a fruit.
type Fruit int32 //enums:enum -trim-prefix Fruit -transform lower

const (
	// FruitApple is red.
	FruitApple Fruit = iota

	FruitBanana
)
`)
	return dir
}

func generateFruit(t *testing.T, dir string) string {
	t.Helper()
	c := DefaultConfig()
	c.Dir = dir
	require.NoError(t, Generate(c))
	b, err := os.ReadFile(filepath.Join(dir, "enumgen.go"))
	require.NoError(t, err)
	return string(b)
}

func TestGenerate(t *testing.T) {
	src := generateFruit(t, fruitModule(t))
	assert.Contains(t, src, `// Code generated by "enumgen"; DO NOT EDIT.`)
	assert.Contains(t, src, "var _FruitValues = []Fruit{0, 1}")
	assert.Contains(t, src, "const FruitN Fruit = 2")
	assert.Contains(t, src, "var _FruitValueMap = map[string]Fruit{`apple`: 0, `banana`: 1}")
	assert.Contains(t, src, "var _FruitDescMap = map[Fruit]string{0: `FruitApple is red.`, 1: ``}")
	assert.Contains(t, src, "func FruitValues() []Fruit { return _FruitValues }")
}

func TestRegenerate(t *testing.T) {
	dir := fruitModule(t)
	first := generateFruit(t, dir)
	second := generateFruit(t, dir)
	assert.Equal(t, first, second)
	assert.NotContains(t, second, "fruitn")
	assert.NotContains(t, second, "2: `")
	assert.Contains(t, second, "const FruitN Fruit = 2")
}

func TestGeneratedFormatted(t *testing.T) {
	for _, pkg := range []string{"middleware", "placement", "position", "scheduler"} {
		b, err := os.ReadFile(filepath.Join("..", pkg, "enumgen.go"))
		require.NoError(t, err)
		f, err := format.Source(b)
		require.NoError(t, err)
		assert.Equal(t, string(f), string(b), pkg)
	}
}
