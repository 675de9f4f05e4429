package union

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"github.com/m4gshm/gollections/convert"
	"github.com/m4gshm/gollections/slice"
	"github.com/pkg/errors"

	"github.com/m4gshm/enumfields/logger"
)

// New builds the model of a sealed interface type declared in file.
func New(fileSet *token.FileSet, typ *types.Named, filePath string, file *ast.File) (*Model, error) {
	obj := typ.Obj()
	typName := obj.Name()

	iface, ok := typ.Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("'%s' is not an interface type", typName)
	} else if typ.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("generic union '%s' is not supported", typName)
	}
	marker := sealingMethod(iface)
	if marker == nil {
		return nil, fmt.Errorf("interface '%s' is not sealed; declare an unexported method to keep all implementations in package '%s'", typName, obj.Pkg().Name())
	}

	variants, err := findVariants(typ, iface, marker)
	if err != nil {
		return nil, errors.Wrapf(err, "variants of %s", typName)
	}
	annotations, err := Annotations(fileSet, file, typName)
	if err != nil {
		return nil, err
	}
	return &Model{
		Typ:         typ,
		File:        file,
		FilePath:    filePath,
		Variants:    variants,
		Annotations: annotations,
		Imports:     Imports(file, obj.Pkg()),
		DotImported: DotImported(file, obj.Pkg()),
	}, nil
}

func sealingMethod(iface *types.Interface) *types.Func {
	for i := 0; i < iface.NumMethods(); i++ {
		if m := iface.Method(i); !m.Exported() {
			return m
		}
	}
	return nil
}

// findVariants returns the package types implementing the union in declaration order.
func findVariants(typ *types.Named, iface *types.Interface, marker *types.Func) ([]Variant, error) {
	type found struct {
		variant Variant
		pos     token.Pos
	}
	scope := typ.Obj().Pkg().Scope()
	typeNames := slice.ConvertOK(slice.Convert(scope.Names(), scope.Lookup), convert.ToType[*types.TypeName])

	variants := []found{}
	for _, typeName := range typeNames {
		if typeName.IsAlias() || typeName == typ.Obj() {
			continue
		}
		named, ok := typeName.Type().(*types.Named)
		if !ok || types.IsInterface(named) {
			continue
		}
		if named.TypeParams().Len() > 0 {
			if hasMethod(named, marker) {
				return nil, fmt.Errorf("generic variant '%s' is not supported", typeName.Name())
			}
			continue
		}
		byValue := types.Implements(named, iface)
		if !byValue && !types.Implements(types.NewPointer(named), iface) {
			continue
		}
		variant, err := newVariant(named, byValue)
		if err != nil {
			return nil, err
		}
		logger.Debugf("variant %s: kind %s, by value %v", variant.Name, variant.Kind, variant.ByValue)
		variants = append(variants, found{variant: variant, pos: typeName.Pos()})
	}
	slices.SortFunc(variants, func(a, b found) int { return cmp.Compare(a.pos, b.pos) })
	return slice.Convert(variants, func(f found) Variant { return f.variant }), nil
}

func hasMethod(named *types.Named, method *types.Func) bool {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(named), true, method.Pkg(), method.Name())
	_, ok := obj.(*types.Func)
	return ok
}

func newVariant(named *types.Named, byValue bool) (Variant, error) {
	name := named.Obj().Name()
	typStruct, ok := named.Underlying().(*types.Struct)
	if !ok {
		return Variant{}, fmt.Errorf("variant '%s' is not a struct type", name)
	}
	variant := Variant{Name: name, ByValue: byValue}
	switch numFields := typStruct.NumFields(); {
	case numFields == 0:
		variant.Kind = Unit
	case numFields == 1 && typStruct.Field(0).Embedded():
		variant.Kind = SinglePositional
		variant.Payload = typStruct.Field(0).Name()
	default:
		variant.Kind = NamedFields
	}
	return variant, nil
}
