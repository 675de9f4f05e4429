package generator

import (
	"bytes"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"

	"github.com/m4gshm/enumfields/model/union"
)

const nolintDirective = "//nolint:all"

// Generator collects accessors into one output file.
type Generator struct {
	Name   string
	Doc    bool
	Nolint bool
	file   *jen.File
	count  int
}

// New creates a generator of a file in the package; args are written into the header as the generating command line.
func New(name string, args []string, pkgPath, pkgName, buildTag string) *Generator {
	file := jen.NewFilePathName(pkgPath, pkgName)
	file.HeaderComment("Code generated by '" + strings.TrimSpace(name+" "+strings.Join(args, " ")) + "'; DO NOT EDIT.")
	if len(buildTag) > 0 {
		file.HeaderComment("//go:build " + buildTag)
	}
	return &Generator{Name: name, file: file}
}

// AddImports registers the qualifiers of the union's file, so that the output refers to packages by the same names.
func (g *Generator) AddImports(imports map[string]union.Import) {
	for name, imp := range imports {
		if imp.Alias {
			g.file.ImportAlias(imp.Path, name)
		} else {
			g.file.ImportName(imp.Path, name)
		}
	}
}

func (g *Generator) AddAccessors(accessors ...Accessor) {
	for _, a := range accessors {
		if g.Doc {
			g.file.Comment(a.Doc())
		}
		if g.Nolint {
			g.file.Comment(nolintDirective)
		}
		g.file.Add(a.Decl)
		g.file.Line()
		g.count++
	}
}

// Len returns the number of added accessors.
func (g *Generator) Len() int {
	return g.count
}

func (g *Generator) FormatSrc() ([]byte, error) {
	out := bytes.Buffer{}
	if err := g.file.Render(&out); err != nil {
		return nil, errors.Wrap(err, "render generated file")
	}
	return out.Bytes(), nil
}
