package engine

import "fmt"

// Op is an arithmetic operation.
type Op uint8

// Known operations.
const (
	OpUnknown Op = iota
	Add
	Subtract
	Multiply
	Divide
)

var opNames = [...]string{
	OpUnknown: "unknown",
	Add:       "addition",
	Subtract:  "subtraction",
	Multiply:  "multiplication",
	Divide:    "division",
}

var opSymbols = [...]string{
	OpUnknown: "?",
	Add:       "+",
	Subtract:  "-",
	Multiply:  "*",
	Divide:    "/",
}

// Valid reports whether op is one of the four known operations.
func (op Op) Valid() bool {
	return op >= Add && op <= Divide
}

func (op Op) String() string {
	if int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
	return opNames[op]
}

// Symbol returns the usual symbol of the operation, e.g. "+".
func (op Op) Symbol() string {
	if int(op) >= len(opSymbols) {
		return opSymbols[OpUnknown]
	}
	return opSymbols[op]
}
