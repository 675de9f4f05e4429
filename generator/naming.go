package generator

import (
	"go/token"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/m4gshm/gollections/slice"
	"github.com/pkg/errors"

	"github.com/m4gshm/enumfields/annotation"
)

// Default accessor name templates per access mode.
const (
	DefaultReadOnlyName = `field`
	DefaultMutableName  = `field + "_mut"`
	DefaultOwningName   = `"into_" + field`
)

// NamingVars lists the variables available in name templates.
const NamingVars = "field, union, type; functions: title, untitle"

// Naming computes default accessor names from expression templates.
type Naming struct {
	programs map[annotation.AccessMode]*vm.Program
	sources  map[annotation.AccessMode]string
}

// NewNaming compiles name templates. An empty template falls back to the mode default.
func NewNaming(templates map[annotation.AccessMode]string) (*Naming, error) {
	n := &Naming{programs: map[annotation.AccessMode]*vm.Program{}, sources: map[annotation.AccessMode]string{}}
	for _, mode := range annotation.Modes() {
		source := templates[mode]
		if len(strings.TrimSpace(source)) == 0 {
			source = defaultNameTemplate(mode)
		}
		program, err := expr.Compile(source, expr.Env(namingEnv("", "", "")), expr.AsKind(reflect.String))
		if err != nil {
			return nil, errors.Wrapf(err, "%s name template '%s'", mode, source)
		}
		n.programs[mode] = program
		n.sources[mode] = source
	}
	return n, nil
}

// DefaultNaming returns the naming with the built-in templates.
func DefaultNaming() *Naming {
	n, err := NewNaming(nil)
	if err != nil {
		panic(err)
	}
	return n
}

// Name evaluates the template of the mode for a field.
func (n *Naming) Name(mode annotation.AccessMode, field, union, typ string) (string, error) {
	program, ok := n.programs[mode]
	if !ok {
		return "", errors.Errorf("no name template for %s mode", mode)
	}
	out, err := expr.Run(program, namingEnv(field, union, typ))
	if err != nil {
		return "", errors.Wrapf(err, "%s name template '%s'", mode, n.sources[mode])
	}
	name, _ := out.(string)
	if !token.IsIdentifier(name) {
		return "", ruleErr(RuleBadName, field, "%s name template '%s' produced invalid identifier '%s' for field '%s'", mode, n.sources[mode], name, field)
	}
	return name, nil
}

func defaultNameTemplate(mode annotation.AccessMode) string {
	switch mode {
	case annotation.Mutable:
		return DefaultMutableName
	case annotation.Owning:
		return DefaultOwningName
	default:
		return DefaultReadOnlyName
	}
}

func namingEnv(field, union, typ string) map[string]any {
	return map[string]any{
		"field":   field,
		"union":   union,
		"type":    typ,
		"title":   title,
		"untitle": untitle,
	}
}

func title(s string) string {
	return withFirst(s, unicode.ToUpper)
}

func untitle(s string) string {
	return withFirst(s, unicode.ToLower)
}

func withFirst(s string, conv func(rune) rune) string {
	if r, size := utf8.DecodeRuneInString(s); size > 0 {
		return string(conv(r)) + s[size:]
	}
	return s
}

// TypeReceiverVar returns a short variable name for a value of the type.
func TypeReceiverVar(typeName string) string {
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		return TypeReceiverVar(typeName[i+1:])
	} else if f, ok := slice.First([]rune(typeName), unicode.IsLetter); ok {
		return string(unicode.ToLower(f))
	}
	return "r"
}
