package annotation

import "strings"

// Format describes the annotation syntax for error messages and usage.
const Format = "[all|own|own_only|mut|mut_only] field_name [as accessor_name]: Type"

// TypeRef is the declared result type of an accessor.
type TypeRef struct {
	// Prefix holds pointer and slice markers written before the name, like "*" or "[]*".
	Prefix    string
	Qualifier string
	Name      string
}

func (t TypeRef) String() string {
	s := t.Prefix
	if len(t.Qualifier) > 0 {
		s += t.Qualifier + "."
	}
	return s + t.Name
}

// FieldSpec is one parsed annotation.
type FieldSpec struct {
	Modes []AccessMode
	Field string
	Type  TypeRef
	// Name overrides the default accessor name. Allowed only with a single mode.
	Name string
}

func (s FieldSpec) HasCustomName() bool {
	return len(s.Name) > 0
}

func (s FieldSpec) String() string {
	b := strings.Builder{}
	b.WriteString(s.Field)
	if s.HasCustomName() {
		b.WriteString(" as ")
		b.WriteString(s.Name)
	}
	b.WriteString(": ")
	b.WriteString(s.Type.String())
	return b.String()
}
