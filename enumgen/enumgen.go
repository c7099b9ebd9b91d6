// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enumgen generates the methods of the enum types of a package.
// An enum type is a named integer type marked with an
//
//	//enums:enum [-trim-prefix prefix] [-add-prefix prefix] [-transform method]
//
// line comment. The generated code uses the [enums] package.
package enumgen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/popup/base/errors"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/tools/go/packages"
)

// Directive is the line comment that marks an enum type.
const Directive = "//enums:enum"

// Generator holds the state of the generator for one package.
type Generator struct {

	// Config is the configuration of the generator.
	Config *Config

	// Pkg is the package being generated.
	Pkg *packages.Package

	// Types are the enum types found in the package.
	Types []*Type

	// Buf is the buffer the generated code is written to.
	Buf bytes.Buffer
}

// Generate generates enum methods for all the enum types in the
// packages matching [Config.Dir], writing each result to the
// [Config.Output] file in the package directory. Packages without
// enum types are skipped. Output files generated by an earlier run are
// read as empty, so that their declarations are not taken as values.
func Generate(c *Config) error {
	overlay, err := outputOverlay(c)
	if err != nil {
		return err
	}
	pkgs, err := packages.Load(&packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:     c.Dir,
		Overlay: overlay,
	}, "./...")
	if err != nil {
		return fmt.Errorf("enumgen: loading packages: %w", err)
	}
	var errs []error
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			errs = append(errs, fmt.Errorf("enumgen: %s: %v", pkg.PkgPath, pkg.Errors[0]))
			continue
		}
		g := &Generator{Config: c, Pkg: pkg}
		if err := g.Find(); err != nil {
			errs = append(errs, err)
			continue
		}
		if len(g.Types) == 0 {
			continue
		}
		if err := g.Write(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// outputOverlay returns a package loading overlay that reduces each
// generated [Config.Output] file under [Config.Dir] to its package clause.
func outputOverlay(c *Config) (map[string][]byte, error) {
	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		return nil, err
	}
	matches, err := doublestar.Glob(os.DirFS(dir), "**/"+c.Output, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("enumgen: finding %s files: %w", c.Output, err)
	}
	overlay := map[string][]byte{}
	for _, m := range matches {
		fn := filepath.Join(dir, filepath.FromSlash(m))
		f, err := parser.ParseFile(token.NewFileSet(), fn, nil, parser.PackageClauseOnly|parser.ParseComments)
		if err != nil || !ast.IsGenerated(f) {
			continue
		}
		overlay[fn] = []byte("package " + f.Name.Name + "\n")
	}
	return overlay, nil
}

// Find finds the enum types of the package and their values.
func (g *Generator) Find() error {
	for _, file := range g.Pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Comment == nil {
					continue
				}
				for _, cm := range ts.Comment.List {
					if !strings.HasPrefix(cm.Text, Directive) {
						continue
					}
					cfg, err := ParseDirective(cm.Text)
					if err != nil {
						return fmt.Errorf("enumgen: %s: %w", ts.Name.Name, err)
					}
					g.Types = append(g.Types, &Type{Name: ts.Name.Name, Config: cfg})
				}
			}
		}
	}
	for _, typ := range g.Types {
		if err := g.values(typ); err != nil {
			return err
		}
	}
	return nil
}

// values gathers the declared constants of the given type, in order.
// Constants in generated files are not values.
func (g *Generator) values(typ *Type) error {
	for _, file := range g.Pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, name := range vs.Names {
					if name.Name == "_" {
						continue
					}
					obj, ok := g.Pkg.TypesInfo.Defs[name].(*types.Const)
					if !ok {
						continue
					}
					named, ok := obj.Type().(*types.Named)
					if !ok || named.Obj().Name() != typ.Name {
						continue
					}
					v, exact := constant.Int64Val(obj.Val())
					if !exact {
						return fmt.Errorf("enumgen: %s: value of %s is not an integer", typ.Name, name.Name)
					}
					typ.Values = append(typ.Values, Value{
						OriginalName: name.Name,
						Name:         name.Name,
						Desc:         docText(vs.Doc),
						Value:        v,
					})
				}
			}
		}
	}
	if len(typ.Values) == 0 {
		return fmt.Errorf("enumgen: %s: no values", typ.Name)
	}
	typ.Values = SortValues(typ.Values)
	return typ.Transform()
}

// Write writes the generated code to the output file.
func (g *Generator) Write() error {
	g.Buf.Reset()
	fmt.Fprintf(&g.Buf, "// Code generated by \"enumgen\"; DO NOT EDIT.\n\npackage %s\n\nimport (\n\t\"cogentcore.org/popup/enums\"\n)\n", g.Pkg.Name)
	for _, typ := range g.Types {
		if err := methodsTmpl.Execute(&g.Buf, typ); err != nil {
			return fmt.Errorf("enumgen: %s: %w", typ.Name, err)
		}
	}
	src, err := format.Source(g.Buf.Bytes())
	if err != nil {
		return fmt.Errorf("enumgen: formatting %s: %w", g.Pkg.PkgPath, err)
	}
	if len(g.Pkg.GoFiles) == 0 {
		return fmt.Errorf("enumgen: %s has no files", g.Pkg.PkgPath)
	}
	out := filepath.Join(filepath.Dir(g.Pkg.GoFiles[0]), g.Config.Output)
	slog.Info("enumgen", "package", g.Pkg.PkgPath, "types", len(g.Types), "file", out)
	return os.WriteFile(out, src, 0666)
}

// docText returns the text of a doc comment as one line.
func docText(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// SortValues sorts the values by value and removes values that
// duplicate an earlier one, keeping the first declared name.
func SortValues(values []Value) []Value {
	slices.SortStableFunc(values, func(a, b Value) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	})
	return slices.CompactFunc(values, func(a, b Value) bool { return a.Value == b.Value })
}
