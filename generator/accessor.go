package generator

import (
	"fmt"
	"go/token"

	"github.com/dave/jennifer/jen"
	"github.com/m4gshm/gollections/collection/immutable"
	"github.com/m4gshm/gollections/slice"

	"github.com/m4gshm/enumfields/annotation"
	"github.com/m4gshm/enumfields/model/union"
	"github.com/m4gshm/enumfields/unique"
)

const bindVar = "v"

type Options struct {
	// Allowed access modes; empty means all.
	Allowed []annotation.AccessMode
	// Naming of accessors without a custom name; nil means the default templates.
	Naming *Naming
	// Imports resolve type qualifiers by name.
	Imports map[string]union.Import
	// DotImported resolves unqualified type names to the dot-imported packages declaring them.
	DotImported map[string]union.Import
}

// Accessor is a generated function that reads one common field of all union variants.
type Accessor struct {
	Name  string
	Mode  annotation.AccessMode
	Field string
	Type  annotation.TypeRef
	Union string
	Param string
	Decl  *jen.Statement
}

// Signature returns the accessor's function header.
func (a Accessor) Signature() string {
	result := a.Type.String()
	if a.Mode == annotation.Mutable {
		result = "*" + result
	}
	return fmt.Sprintf("func %s(%s %s) %s", a.Name, a.Param, a.Union, result)
}

// Doc returns the accessor's doc comment text.
func (a Accessor) Doc() string {
	switch a.Mode {
	case annotation.Mutable:
		return fmt.Sprintf("%s returns a pointer to the %s field of the %s variant.", a.Name, a.Field, a.Union)
	case annotation.Owning:
		return fmt.Sprintf("%s extracts the %s field from the %s variant.", a.Name, a.Field, a.Union)
	default:
		return fmt.Sprintf("%s returns the %s field of the %s variant.", a.Name, a.Field, a.Union)
	}
}

// Synthesize builds accessors for every field spec and access mode, in declaration order.
// All checks run before any accessor is built, so an error means no output.
func Synthesize(unionName string, variants []union.Variant, specs []annotation.FieldSpec, opts Options) ([]Accessor, error) {
	if err := check(unionName, variants, specs, opts); err != nil {
		return nil, err
	}
	naming := opts.Naming
	if naming == nil {
		naming = DefaultNaming()
	}

	param := TypeReceiverVar(unionName)
	bind := unique.NewNamesWith(unique.PreInit(param)).Get(bindVar)

	accessors := []Accessor{}
	for _, spec := range specs {
		typ, err := typeCode(spec.Type, opts.Imports, opts.DotImported)
		if err != nil {
			return nil, err
		}
		for _, mode := range spec.Modes {
			name := spec.Name
			if !spec.HasCustomName() {
				if name, err = naming.Name(mode, spec.Field, unionName, spec.Type.String()); err != nil {
					return nil, err
				}
			} else if !token.IsIdentifier(name) {
				return nil, ruleErr(RuleBadName, spec.Field, "invalid accessor name '%s' of field '%s'", name, spec.Field)
			}
			accessors = append(accessors, Accessor{
				Name:  name,
				Mode:  mode,
				Field: spec.Field,
				Type:  spec.Type,
				Union: unionName,
				Param: param,
				Decl:  accessorDecl(name, mode, spec.Field, typ, unionName, param, bind, variants),
			})
		}
	}
	return accessors, nil
}

func check(unionName string, variants []union.Variant, specs []annotation.FieldSpec, opts Options) error {
	if len(specs) == 0 {
		return ruleErr(RuleNoAnnotations, unionName, "no field annotations on '%s'", unionName)
	}
	if len(variants) == 0 {
		return ruleErr(RuleNoVariants, unionName, "no variants of '%s' found in the package", unionName)
	}
	for _, v := range variants {
		if v.Kind != union.NamedFields && v.Kind != union.SinglePositional {
			return ruleErr(RuleUnitVariant, v.Name, "variant '%s' of '%s' has no payload to read fields from", v.Name, unionName)
		}
	}
	for _, spec := range specs {
		if spec.HasCustomName() && len(spec.Modes) != 1 {
			return ruleErr(RuleCustomNameMultiMode, spec.Field, "field '%s': custom accessor name '%s' requires exactly one access mode, got %d", spec.Field, spec.Name, len(spec.Modes))
		}
	}
	if len(opts.Allowed) > 0 {
		allowed := immutable.NewSet(opts.Allowed...)
		for _, spec := range specs {
			if mode, ok := slice.First(spec.Modes, func(m annotation.AccessMode) bool { return !allowed.Contains(m) }); ok {
				return ruleErr(RuleModeNotAllowed, mode.String(), "field '%s': %s accessors are not allowed", spec.Field, mode)
			}
		}
	}
	if mutable, ok := slice.First(specs, hasMode(annotation.Mutable)); ok {
		if v, ok := slice.First(variants, func(v union.Variant) bool { return v.ByValue }); ok {
			return ruleErr(RuleMutableValueVariant, v.Name, "field '%s': mutable accessor needs pointer variants, but '%s' implements '%s' by value", mutable.Field, v.Name, unionName)
		}
	}
	for _, spec := range specs {
		if q := spec.Type.Qualifier; len(q) > 0 {
			if _, ok := opts.Imports[q]; !ok {
				return ruleErr(RuleUnknownQualifier, q, "field '%s': type '%s' uses qualifier '%s' that is not imported by the file declaring '%s'", spec.Field, spec.Type, q, unionName)
			}
		}
	}
	return nil
}

func hasMode(mode annotation.AccessMode) func(annotation.FieldSpec) bool {
	return func(spec annotation.FieldSpec) bool {
		_, ok := slice.First(spec.Modes, func(m annotation.AccessMode) bool { return m == mode })
		return ok
	}
}

func accessorDecl(name string, mode annotation.AccessMode, field string, typ jen.Code, unionName, param, bind string, variants []union.Variant) *jen.Statement {
	result := jen.Add(typ)
	if mode == annotation.Mutable {
		result = jen.Op("*").Add(typ)
	}
	cases := []jen.Code{}
	for _, v := range variants {
		read := fieldExpr(bind, v, field, mode)
		if v.ByValue {
			cases = append(cases, jen.Case(jen.Id(v.Name)).Block(jen.Return(read)))
		}
		cases = append(cases, jen.Case(jen.Op("*").Id(v.Name)).Block(jen.Return(read)))
	}
	return jen.Func().Id(name).Params(jen.Id(param).Id(unionName)).Add(result).Block(
		jen.Switch(jen.Id(bind).Op(":=").Id(param).Assert(jen.Type())).Block(cases...),
		jen.Panic(jen.Lit(unionName+": unexpected variant")),
	)
}

func fieldExpr(bind string, v union.Variant, field string, mode annotation.AccessMode) *jen.Statement {
	read := jen.Id(bind)
	if v.Kind == union.SinglePositional {
		read = read.Dot(v.Payload)
	}
	read = read.Dot(field)
	if mode == annotation.Mutable {
		return jen.Op("&").Add(read)
	}
	return read
}

func typeCode(t annotation.TypeRef, imports, dotImported map[string]union.Import) (jen.Code, error) {
	s := jen.Null()
	for prefix := t.Prefix; len(prefix) > 0; {
		if prefix[0] == '*' {
			s = s.Op("*")
			prefix = prefix[1:]
		} else {
			s = s.Index()
			prefix = prefix[2:]
		}
	}
	if len(t.Qualifier) == 0 {
		if imp, ok := dotImported[t.Name]; ok {
			return s.Qual(imp.Path, t.Name), nil
		}
		return s.Id(t.Name), nil
	}
	imp, ok := imports[t.Qualifier]
	if !ok {
		return nil, ruleErr(RuleUnknownQualifier, t.Qualifier, "unknown type qualifier '%s'", t.Qualifier)
	}
	return s.Qual(imp.Path, t.Name), nil
}
