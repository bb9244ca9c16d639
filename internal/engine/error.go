package engine

import "fmt"

// Kind classifies why a computation failed.
type Kind uint8

// Known kinds.
const (
	KindUnknown Kind = iota
	// DivisionByZero means that the divisor was 0.
	DivisionByZero
)

func (k Kind) String() string {
	switch k {
	case DivisionByZero:
		return "DIVISION_BY_ZERO"
	}
	return "UNKNOWN"
}

// Error is the error returned by a failed computation.
type Error struct {
	Kind Kind
	Op   Op
}

func (e *Error) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return "division by zero"
	}
	return fmt.Sprintf("%s failed", e.Op)
}
