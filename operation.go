package calc

import (
	"fmt"
	"strings"

	"github.com/tsatke/calc/internal/engine"
)

// Operation is one of the four arithmetic operations. The zero value is no
// operation.
type Operation uint8

const (
	Addition Operation = iota + 1
	Subtraction
	Multiplication
	Division
)

var operations = map[Operation]engine.Op{
	Addition:       engine.Add,
	Subtraction:    engine.Subtract,
	Multiplication: engine.Multiply,
	Division:       engine.Divide,
}

var operationNames = map[string]Operation{
	"addition":       Addition,
	"add":            Addition,
	"+":              Addition,
	"subtraction":    Subtraction,
	"subtract":       Subtraction,
	"sub":            Subtraction,
	"-":              Subtraction,
	"multiplication": Multiplication,
	"multiply":       Multiplication,
	"mul":            Multiplication,
	"*":              Multiplication,
	"x":              Multiplication,
	"division":       Division,
	"divide":         Division,
	"div":            Division,
	"/":              Division,
}

// ParseOperation returns the operation with the given name or symbol, for
// example "addition", "add" or "+". Names are case insensitive.
func ParseOperation(name string) (Operation, error) {
	op, ok := operationNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// Valid reports whether op is one of the four known operations.
func (op Operation) Valid() bool {
	_, ok := operations[op]
	return ok
}

func (op Operation) internal() engine.Op {
	return operations[op]
}

// String returns the name of the operation, e.g. "addition".
func (op Operation) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Operation(%d)", uint8(op))
	}
	return op.internal().String()
}

// Symbol returns the usual symbol of the operation, e.g. "+".
func (op Operation) Symbol() string {
	return op.internal().Symbol()
}
