package union

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Kind is the shape of a union variant.
type Kind int

const (
	// Unit is a variant without fields. Such variants cannot carry common fields.
	Unit Kind = iota
	// NamedFields is a struct variant with the fields declared inline.
	NamedFields
	// SinglePositional is a struct variant with one embedded payload.
	SinglePositional
)

func (k Kind) String() string {
	switch k {
	case Unit:
		return "unit"
	case NamedFields:
		return "named fields"
	case SinglePositional:
		return "single positional"
	default:
		return "unknown"
	}
}

type Variant struct {
	Name string
	Kind Kind
	// Payload is the embedded field name of a SinglePositional variant.
	Payload string
	// ByValue means the variant's value type implements the union; otherwise only its pointer does.
	ByValue bool
}

// Annotation is a raw field annotation with the position of its first payload byte.
type Annotation struct {
	Payload string
	Pos     token.Pos
}

type Import struct {
	Path  string
	Alias bool
}

// Model is a sealed interface type with its variants and annotations.
type Model struct {
	Typ         *types.Named
	File        *ast.File
	FilePath    string
	Variants    []Variant
	Annotations []Annotation
	// Imports of the declaring file by qualifier.
	Imports map[string]Import
	// DotImported resolves unqualified type names of dot-imported packages.
	DotImported map[string]Import
}

func (m *Model) TypeName() string {
	return m.Typ.Obj().Name()
}

func (m *Model) Package() *types.Package {
	return m.Typ.Obj().Pkg()
}
