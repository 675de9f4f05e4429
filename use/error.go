package use

import (
	"go/token"
)

func Err(message string) *Error {
	return &Error{message: message}
}

// PositionErr reports an error at a source position, keeping the cause for errors.As.
func PositionErr(position token.Position, cause error, message string) *Error {
	return &Error{message: message, position: position, cause: cause}
}

type Error struct {
	message string

	position token.Position
	cause    error
}

func (e *Error) Error() string {
	if e.position.IsValid() {
		return e.position.String() + ": " + e.message
	}
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}
