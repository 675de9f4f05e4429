// Package annotation parses common field annotations like "mut key as getKey: Key".
package annotation

import (
	gotoken "go/token"
	"slices"
)

const (
	PrefixMut     = "mut"
	PrefixMutOnly = "mut_only"
	PrefixAll     = "all"
	PrefixOwn     = "own"
	PrefixOwnOnly = "own_only"

	customNameKeyword = "as"
)

// prefixes in the order they are tried
var prefixes = []struct {
	keyword string
	modes   []AccessMode
}{
	{PrefixMut, []AccessMode{ReadOnly, Mutable}},
	{PrefixMutOnly, []AccessMode{Mutable}},
	{PrefixAll, []AccessMode{Owning, Mutable, ReadOnly}},
	{PrefixOwn, []AccessMode{Owning, Mutable, ReadOnly}},
	{PrefixOwnOnly, []AccessMode{Owning}},
}

// Parse converts one annotation payload into a FieldSpec.
func Parse(payload string) (FieldSpec, error) {
	tokens, err := tokenize(payload)
	if err != nil {
		return FieldSpec{}, err
	}
	p := &parser{cur: cursor{tokens: tokens}}
	return p.parse()
}

type parser struct {
	cur cursor
}

func (p *parser) fork() cursor {
	return p.cur
}

func (p *parser) advanceTo(fork cursor) {
	p.cur = fork
}

func (p *parser) parse() (FieldSpec, error) {
	spec := FieldSpec{Modes: p.modes()}
	field, err := p.expectIdent("field name")
	if err != nil {
		return FieldSpec{}, err
	}
	spec.Field = field

	if t := p.cur.peek(0); t.isIdent(customNameKeyword) {
		if len(spec.Modes) != 1 {
			return FieldSpec{}, &SyntaxError{Offset: t.offset, Expected: "':'", Found: t.describe(),
				Hint: "\"as accessor_name\" is supported only for single accessor annotations (own_only, mut_only or no prefix)"}
		}
		_, p.cur = p.cur.next()
		name, err := p.expectIdent("accessor name after 'as'")
		if err != nil {
			return FieldSpec{}, err
		}
		spec.Name = name
	}

	if err := p.expect(gotoken.COLON, "':'"); err != nil {
		return FieldSpec{}, err
	}
	typ, err := p.typeRef()
	if err != nil {
		return FieldSpec{}, err
	}
	spec.Type = typ

	if !p.cur.atEnd() {
		t := p.cur.peek(0)
		return FieldSpec{}, &SyntaxError{Offset: t.offset, Expected: "end of annotation", Found: t.describe()}
	}
	return spec, nil
}

// modes resolves the optional mode prefix.
// An unknown leading identifier is not consumed and is parsed as the field name.
func (p *parser) modes() []AccessMode {
	if p.cur.peek(0).kind == gotoken.IDENT && p.cur.peek(1).kind == gotoken.COLON {
		return []AccessMode{ReadOnly}
	}
	fork := p.fork()
	if word, next, ok := fork.ident(); ok {
		for _, prefix := range prefixes {
			if prefix.keyword == word.lit {
				p.advanceTo(next)
				return slices.Clone(prefix.modes)
			}
		}
	}
	return []AccessMode{ReadOnly}
}

func (p *parser) typeRef() (TypeRef, error) {
	prefix := ""
	for {
		t := p.cur.peek(0)
		if t.kind == gotoken.MUL {
			prefix += "*"
			_, p.cur = p.cur.next()
		} else if t.kind == gotoken.LBRACK {
			_, p.cur = p.cur.next()
			if err := p.expect(gotoken.RBRACK, "']'"); err != nil {
				return TypeRef{}, err
			}
			prefix += "[]"
		} else {
			break
		}
	}
	name, err := p.expectIdent("type name")
	if err != nil {
		return TypeRef{}, err
	}
	if p.cur.peek(0).kind != gotoken.PERIOD {
		return TypeRef{Prefix: prefix, Name: name}, nil
	}
	_, p.cur = p.cur.next()
	selected, err := p.expectIdent("type name after '.'")
	if err != nil {
		return TypeRef{}, err
	}
	return TypeRef{Prefix: prefix, Qualifier: name, Name: selected}, nil
}

func (p *parser) expectIdent(expected string) (string, error) {
	t, next, ok := p.cur.ident()
	if !ok {
		found := p.cur.peek(0)
		return "", &SyntaxError{Offset: found.offset, Expected: expected, Found: found.describe()}
	}
	p.advanceTo(next)
	return t.lit, nil
}

func (p *parser) expect(kind gotoken.Token, expected string) error {
	t, next := p.cur.next()
	if t.kind != kind {
		return &SyntaxError{Offset: t.offset, Expected: expected, Found: t.describe()}
	}
	p.advanceTo(next)
	return nil
}
