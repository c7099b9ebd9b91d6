// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox_test

import (
	"path/filepath"
	"testing"

	"cogentcore.org/popup/base/iox/jsonx"
	"cogentcore.org/popup/base/iox/tomlx"
	"cogentcore.org/popup/base/iox/yamlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name     string  `json:"name" toml:"name" yaml:"name"`
	Distance float32 `json:"distance" toml:"distance" yaml:"distance"`
	Flip     bool    `json:"flip" toml:"flip" yaml:"flip"`
}

func TestFormats(t *testing.T) {
	in := testStruct{Name: "menu", Distance: 8, Flip: true}
	dir := t.TempDir()

	formats := []struct {
		ext  string
		save func(v any, fn string) error
		open func(v any, fn string) error
	}{
		{"toml", tomlx.Save, tomlx.Open},
		{"yaml", yamlx.Save, yamlx.Open},
		{"json", jsonx.Save, jsonx.Open},
	}
	for _, f := range formats {
		t.Run(f.ext, func(t *testing.T) {
			fn := filepath.Join(dir, "test."+f.ext)
			require.NoError(t, f.save(&in, fn))
			var out testStruct
			require.NoError(t, f.open(&out, fn))
			assert.Equal(t, in, out)
		})
	}
}

func TestReadBytes(t *testing.T) {
	var v testStruct
	require.NoError(t, yamlx.ReadBytes(&v, []byte("name: tip\ndistance: 4\n")))
	assert.Equal(t, testStruct{Name: "tip", Distance: 4}, v)

	b, err := tomlx.WriteBytes(&v)
	require.NoError(t, err)
	assert.Contains(t, string(b), "tip")

	assert.Error(t, jsonx.ReadBytes(&v, []byte("{")))
}
