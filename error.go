package calc

import (
	"errors"
	"fmt"

	"github.com/tsatke/calc/internal/engine"
	"github.com/tsatke/calc/internal/parser"
)

// Sentinel errors, which a *ValidationError or a *ComputeError matches with errors.Is.
var (
	ErrEmptyOrIncomplete = errors.New("empty or incomplete number")
	ErrBadSpacing        = errors.New("misplaced grouping spaces")
	ErrBadFormat         = errors.New("invalid number format")
	ErrOutOfRange        = errors.New("number out of range")
	ErrDivisionByZero    = errors.New("division by zero")
)

// ErrUnknownOperation is returned when computing with an operation that is
// not one of the four known ones.
var ErrUnknownOperation = errors.New("unknown operation")

// ValidationErrorKind classifies why a text was rejected.
type ValidationErrorKind uint8

const (
	EmptyOrIncomplete ValidationErrorKind = iota + 1
	BadSpacing
	BadFormat
	OutOfRange
)

var validationKinds = map[parser.Kind]ValidationErrorKind{
	parser.EmptyOrIncomplete: EmptyOrIncomplete,
	parser.BadSpacing:        BadSpacing,
	parser.BadFormat:         BadFormat,
	parser.OutOfRange:        OutOfRange,
}

// String returns the stable code of the kind, e.g. "BAD_SPACING".
func (k ValidationErrorKind) String() string {
	switch k {
	case EmptyOrIncomplete:
		return "EMPTY_OR_INCOMPLETE"
	case BadSpacing:
		return "BAD_SPACING"
	case BadFormat:
		return "BAD_FORMAT"
	case OutOfRange:
		return "OUT_OF_RANGE"
	}
	return fmt.Sprintf("ValidationErrorKind(%d)", uint8(k))
}

func (k ValidationErrorKind) sentinel() error {
	switch k {
	case EmptyOrIncomplete:
		return ErrEmptyOrIncomplete
	case BadSpacing:
		return ErrBadSpacing
	case BadFormat:
		return ErrBadFormat
	case OutOfRange:
		return ErrOutOfRange
	}
	return nil
}

// ValidationError is the error returned when a text is not a valid number.
type ValidationError struct {
	Kind  ValidationErrorKind
	Input string

	err error
}

func validationErrorFromInternal(input string, err *parser.Error) *ValidationError {
	return &ValidationError{
		Kind:  validationKinds[err.Kind],
		Input: input,
		err:   err,
	}
}

func (e *ValidationError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Kind.sentinel(), e.Input)
}

// Code returns the stable code of the error kind.
func (e *ValidationError) Code() string {
	return e.Kind.String()
}

func (e *ValidationError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// ComputeErrorKind classifies why a computation failed.
type ComputeErrorKind uint8

const (
	DivisionByZero ComputeErrorKind = iota + 1
)

func (k ComputeErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "DIVISION_BY_ZERO"
	}
	return fmt.Sprintf("ComputeErrorKind(%d)", uint8(k))
}

// ComputeError is the error returned when a computation fails.
type ComputeError struct {
	Kind ComputeErrorKind
	Op   Operation
}

func computeErrorFromInternal(op Operation, err *engine.Error) *ComputeError {
	e := &ComputeError{
		Op: op,
	}
	switch err.Kind {
	case engine.DivisionByZero:
		e.Kind = DivisionByZero
	}
	return e
}

func (e *ComputeError) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return ErrDivisionByZero.Error()
	}
	return fmt.Sprintf("%s failed", e.Op)
}

// Code returns the stable code of the error kind.
func (e *ComputeError) Code() string {
	return e.Kind.String()
}

func (e *ComputeError) Is(target error) bool {
	return e.Kind == DivisionByZero && target == ErrDivisionByZero
}

// Code returns the stable code of a *ValidationError or *ComputeError
// in err's chain, or "ERROR" for any other error.
func Code(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Code()
	}
	var cerr *ComputeError
	if errors.As(err, &cerr) {
		return cerr.Code()
	}
	return "ERROR"
}
