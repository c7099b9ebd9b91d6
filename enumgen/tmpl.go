// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import "text/template"

// methodsTmpl is the template for the methods of a [Type].
var methodsTmpl = template.Must(template.New("methods").Parse(`
var _{{.Name}}Values = []{{.Name}}{ {{- .ValueList -}} }

// {{.Name}}N is the highest valid value for type {{.Name}}, plus one.
const {{.Name}}N {{.Name}} = {{.N}}

var _{{.Name}}ValueMap = map[string]{{.Name}}{ {{- .ValueMap -}} }

var _{{.Name}}DescMap = map[{{.Name}}]string{ {{- .DescMap -}} }

var _{{.Name}}Map = map[{{.Name}}]string{ {{- .NameMap -}} }

// String returns the string representation of this {{.Name}} value.
func (i {{.Name}}) String() string { return enums.String(i, _{{.Name}}Map) }

// SetString sets the {{.Name}} value from its string representation,
// and returns an error if the string is invalid.
func (i *{{.Name}}) SetString(s string) error {
	return enums.SetString(i, s, _{{.Name}}ValueMap, "{{.Name}}")
}

// Int64 returns the {{.Name}} value as an int64.
func (i {{.Name}}) Int64() int64 { return int64(i) }

// SetInt64 sets the {{.Name}} value from an int64.
func (i *{{.Name}}) SetInt64(in int64) { *i = {{.Name}}(in) }

// Desc returns the description of the {{.Name}} value.
func (i {{.Name}}) Desc() string { return enums.Desc(i, _{{.Name}}DescMap) }

// {{.Name}}Values returns all possible values for the type {{.Name}}.
func {{.Name}}Values() []{{.Name}} { return _{{.Name}}Values }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i {{.Name}}) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *{{.Name}}) UnmarshalText(text []byte) error { return enums.UnmarshalText(i, text, "{{.Name}}") }
`))
