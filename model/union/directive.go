package union

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/m4gshm/enumfields/annotation"
	"github.com/m4gshm/enumfields/model/util"
	"github.com/m4gshm/enumfields/use"
)

const (
	DirectivePrefix = "//enumfields:"
	FieldDirective  = "field"
	// FieldFormat is the expected form of a field directive line.
	FieldFormat = DirectivePrefix + FieldDirective + " " + annotation.Format
)

// Annotations extracts the field directives from the doc comment of a type declaration.
func Annotations(fileSet *token.FileSet, file *ast.File, typeName string) ([]Annotation, error) {
	genDecl, typeSpec := util.FindTypeSpec(file, typeName)
	if typeSpec == nil {
		return nil, fmt.Errorf("declaration of '%s' not found in file %s", typeName, file.Name)
	}
	docs := []*ast.CommentGroup{}
	if genDecl.Lparen == token.NoPos && genDecl.Doc != nil {
		docs = append(docs, genDecl.Doc)
	}
	if typeSpec.Doc != nil && typeSpec.Doc != genDecl.Doc {
		docs = append(docs, typeSpec.Doc)
	}

	annotations := []Annotation{}
	for _, doc := range docs {
		for _, comment := range doc.List {
			if a, ok, err := parseDirective(fileSet, comment); err != nil {
				return nil, err
			} else if ok {
				annotations = append(annotations, a)
			}
		}
	}
	return annotations, nil
}

func parseDirective(fileSet *token.FileSet, comment *ast.Comment) (Annotation, bool, error) {
	text := comment.Text
	if !strings.HasPrefix(text, DirectivePrefix) {
		return Annotation{}, false, nil
	}
	rest := text[len(DirectivePrefix):]
	name := rest
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		name = rest[:i]
	}
	if name != FieldDirective {
		return Annotation{}, false, use.PositionErr(fileSet.Position(comment.Pos()), nil,
			fmt.Sprintf("unknown directive '%s'; expected format: %s", name, FieldFormat))
	}
	payloadStart := len(DirectivePrefix) + len(name)
	return Annotation{Payload: text[payloadStart:], Pos: comment.Slash + token.Pos(payloadStart)}, true, nil
}

// Imports maps the qualifiers usable in the file to the imported packages.
func Imports(file *ast.File, pkg *types.Package) map[string]Import {
	names := map[string]string{}
	for _, imported := range pkg.Imports() {
		names[imported.Path()] = imported.Name()
	}
	imports := map[string]Import{}
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		if spec.Name != nil {
			if alias := spec.Name.Name; alias != "_" && alias != "." {
				imports[alias] = Import{Path: path, Alias: true}
			}
			continue
		}
		name, ok := names[path]
		if !ok {
			name = util.GetPackageName(path)
		}
		imports[name] = Import{Path: path}
	}
	return imports
}

// DotImported maps the exported type names brought into the file by dot imports to their packages.
func DotImported(file *ast.File, pkg *types.Package) map[string]Import {
	byPath := map[string]*types.Package{}
	for _, imported := range pkg.Imports() {
		byPath[imported.Path()] = imported
	}
	typeImports := map[string]Import{}
	for _, spec := range file.Imports {
		if spec.Name == nil || spec.Name.Name != "." {
			continue
		}
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		imported, ok := byPath[path]
		if !ok {
			continue
		}
		scope := imported.Scope()
		for _, name := range scope.Names() {
			if typeName, ok := scope.Lookup(name).(*types.TypeName); ok && typeName.Exported() {
				typeImports[name] = Import{Path: path}
			}
		}
	}
	return typeImports
}
