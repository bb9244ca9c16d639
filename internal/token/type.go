package token

//go:generate stringer -type=Type

// Type is a token type.
type Type uint8

// Known types.
const (
	Unknown Type = iota

	// Digits is the token type for a run of decimal digits '0'-'9'.
	Digits
	// Space is the token type for a run of whitespace. Inside the integer
	// part of a literal, a single space separates groups of thousands.
	Space
	// Point is the token type for the decimal point '.'.
	Point
	// Minus is the token type for the sign '-'.
	Minus

	// Error is a token type that indicates that this token represents
	// a rune that can not appear in a literal. The value of this token is the offending input.
	Error
)
