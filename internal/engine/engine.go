package engine

import (
	"fmt"

	"github.com/tsatke/calc/internal/value"
)

// Engine performs arithmetic on fixed-point numbers. An Engine holds no
// state besides its configuration and is safe for concurrent use.
//
// The engine does not check the range of its results, a result may well
// lie outside of [value.MinValue, value.MaxValue]. Use value.Fixed.IsOverflowing
// on the result.
type Engine struct {
	// division determines how quotients are computed.
	division Division
}

// Division selects the algorithm used for division.
type Division uint8

const (
	// DivisionFloat divides the float64 approximations of both operands and
	// rounds the quotient to value.Scale digits. This is not exact, but
	// matches the results of float64 based calculators bit for bit.
	DivisionFloat Division = iota
	// DivisionExact divides the exact operands and rounds the quotient half up
	// to value.Scale digits.
	DivisionExact
)

func (d Division) String() string {
	switch d {
	case DivisionFloat:
		return "float"
	case DivisionExact:
		return "exact"
	}
	return fmt.Sprintf("Division(%d)", uint8(d))
}

// New creates a new, ready to use Engine, already applying all given options.
// By default, the engine uses DivisionFloat.
func New(opts ...Option) *Engine {
	e := &Engine{
		division: DivisionFloat,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute applies the operation to both operands. The only error that is
// caused by the operands is an *Error with kind DivisionByZero.
func (e *Engine) Compute(op Op, left, right value.Fixed) (value.Fixed, error) {
	switch op {
	case Add:
		return e.add(left, right), nil
	case Subtract:
		return e.subtract(left, right), nil
	case Multiply:
		return e.multiply(left, right), nil
	case Divide:
		return e.divide(left, right)
	}
	return value.Zero, fmt.Errorf("unknown operation %v", op)
}
