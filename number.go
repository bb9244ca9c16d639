package calc

import (
	"math/big"

	"github.com/tsatke/calc/internal/value"
)

// Number is a fixed-point decimal number with six fractional digits.
// The zero value is the number 0.
type Number struct {
	fixed value.Fixed
}

// Integer returns the signed integer part of n. For numbers between -1 and 0
// this is 0, use IsNeg to obtain the sign.
func (n Number) Integer() *big.Int {
	return n.fixed.Integer()
}

// Fraction returns the six fractional digits of n, e.g. "500000" for 1.5.
func (n Number) Fraction() string {
	return n.fixed.Fraction()
}

func (n Number) IsNeg() bool {
	return n.fixed.IsNeg()
}

func (n Number) IsZero() bool {
	return n.fixed.IsZero()
}

// Cmp compares n and m and returns -1, 0 or +1.
func (n Number) Cmp(m Number) int {
	return n.fixed.Cmp(m.fixed)
}

// Equal reports whether n and m are the same number.
func (n Number) Equal(m Number) bool {
	return n.fixed.Equal(m.fixed)
}

// Float64 returns an approximation of n.
func (n Number) Float64() float64 {
	return n.fixed.Float64()
}

// String returns n without grouping and without trailing fractional zeros,
// e.g. "-1234.5". Use Format for display.
func (n Number) String() string {
	return n.fixed.String()
}
