package annotation

import (
	"go/scanner"
	gotoken "go/token"
)

type token struct {
	kind   gotoken.Token
	lit    string
	offset int
}

func (t token) isIdent(name string) bool {
	return t.kind == gotoken.IDENT && t.lit == name
}

func (t token) describe() string {
	switch t.kind {
	case gotoken.EOF:
		return "end of annotation"
	case gotoken.IDENT:
		return "'" + t.lit + "'"
	default:
		if len(t.lit) > 0 {
			return "'" + t.lit + "'"
		}
		return "'" + t.kind.String() + "'"
	}
}

// tokenize splits an annotation payload by the Go scanner rules.
// The result always ends with an EOF token.
func tokenize(payload string) ([]token, error) {
	src := []byte(payload)
	fileSet := gotoken.NewFileSet()
	file := fileSet.AddFile("", fileSet.Base(), len(src))

	var scanErr *SyntaxError
	s := scanner.Scanner{}
	s.Init(file, src, func(pos gotoken.Position, msg string) {
		if scanErr == nil {
			scanErr = &SyntaxError{Offset: pos.Offset, Expected: "valid token", Found: msg}
		}
	}, 0)

	tokens := []token{}
	for {
		pos, kind, lit := s.Scan()
		if kind == gotoken.EOF {
			tokens = append(tokens, token{kind: kind, offset: len(src)})
			break
		} else if kind == gotoken.SEMICOLON && lit == "\n" {
			//automatically inserted
			continue
		}
		tokens = append(tokens, token{kind: kind, lit: lit, offset: file.Offset(pos)})
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return tokens, nil
}

// cursor is an immutable position in a token list.
// Moving returns a new cursor, so a failed attempt leaves the original untouched.
type cursor struct {
	tokens []token
	pos    int
}

func (c cursor) peek(n int) token {
	i := c.pos + n
	if last := len(c.tokens) - 1; i > last {
		i = last
	}
	return c.tokens[i]
}

func (c cursor) next() (token, cursor) {
	t := c.peek(0)
	if t.kind != gotoken.EOF {
		c.pos++
	}
	return t, c
}

func (c cursor) ident() (token, cursor, bool) {
	if t := c.peek(0); t.kind == gotoken.IDENT {
		_, n := c.next()
		return t, n, true
	}
	return token{}, c, false
}

func (c cursor) atEnd() bool {
	return c.peek(0).kind == gotoken.EOF
}
