package annotation

import "fmt"

// SyntaxError reports a malformed annotation.
// Offset is the byte offset inside the annotation payload.
type SyntaxError struct {
	Offset   int
	Expected string
	Found    string
	Hint     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message())
}

// Message is the error text without the offset, used when the caller reports its own position.
func (e *SyntaxError) Message() string {
	m := fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	if len(e.Hint) > 0 {
		m += " (" + e.Hint + ")"
	}
	return m
}
