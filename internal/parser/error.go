package parser

import (
	"fmt"

	"github.com/tsatke/calc/internal/token"
)

// Kind classifies why a literal was rejected.
type Kind uint8

// Known kinds.
const (
	KindUnknown Kind = iota
	// EmptyOrIncomplete means that there is no number yet, e.g. "" or "-".
	EmptyOrIncomplete
	// BadSpacing means that the grouping spaces are not placed in groups of three digits.
	BadSpacing
	// BadFormat means that the literal is not a decimal number.
	BadFormat
	// OutOfRange means that the number lies outside of the supported range.
	OutOfRange
)

var kindCodes = [...]string{
	KindUnknown:       "UNKNOWN",
	EmptyOrIncomplete: "EMPTY_OR_INCOMPLETE",
	BadSpacing:        "BAD_SPACING",
	BadFormat:         "BAD_FORMAT",
	OutOfRange:        "OUT_OF_RANGE",
}

var kindMessages = [...]string{
	KindUnknown:       "unknown error",
	EmptyOrIncomplete: "enter a number",
	BadSpacing:        "misplaced grouping spaces",
	BadFormat:         "invalid number format",
	OutOfRange:        "number out of range",
}

// String returns the stable code of the kind, e.g. "BAD_SPACING".
func (k Kind) String() string {
	if int(k) >= len(kindCodes) {
		return kindCodes[KindUnknown]
	}
	return kindCodes[k]
}

// Message returns a short human readable description of the kind.
func (k Kind) Message() string {
	if int(k) >= len(kindMessages) {
		return kindMessages[KindUnknown]
	}
	return kindMessages[k]
}

// Error is the error returned by Parse. Pos points to the offending token
// if there is one.
type Error struct {
	Kind   Kind
	Input  string
	Pos    token.Position
	HasPos bool
}

func (e *Error) Error() string {
	if e.HasPos {
		return fmt.Sprintf("%s at %s: %q", e.Kind.Message(), e.Pos, e.Input)
	}
	return fmt.Sprintf("%s: %q", e.Kind.Message(), e.Input)
}

func newError(kind Kind, input string) *Error {
	return &Error{
		Kind:  kind,
		Input: input,
	}
}

func newErrorAt(kind Kind, input string, tk token.Token) *Error {
	return &Error{
		Kind:   kind,
		Input:  input,
		Pos:    tk.Pos(),
		HasPos: true,
	}
}
