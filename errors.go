package qrstudio

import (
	"github.com/pkg/errors"
)

// Kind classifies the failures a user can run into.
type Kind uint8

const (
	// KindEmptyInput means generation was asked for with no text.
	KindEmptyInput Kind = iota + 1
	// KindEncoding means the encoder or renderer rejected the text,
	// typically because it exceeds the symbol capacity.
	KindEncoding
	// KindSaveWrite means the held image could not be written.
	KindSaveWrite
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty input"
	case KindEncoding:
		return "encoding failure"
	case KindSaveWrite:
		return "save failure"
	}

	return "unknown"
}

// Error is returned by Encode, Shell.Generate and Shell.SaveTo.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == kind
}

// Cause returns the innermost message, the part shown to the user.
func Cause(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}

	return err.Error()
}
