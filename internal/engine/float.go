package engine

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tsatke/calc/internal/value"
)

// pow10Scale is 10^value.Scale as float64.
var pow10Scale = math.Pow10(value.Scale)

// quoFloat divides the float64 approximations of both operands and rounds the
// quotient to value.Scale digits. If one of the operands has no finite float64
// approximation, false is returned.
func quoFloat(left, right value.Fixed) (value.Fixed, bool) {
	x, y := left.Float64(), right.Float64()
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return value.Zero, false
	}

	q := x / y
	q = roundHalfPositive(q*pow10Scale) / pow10Scale
	if math.IsInf(q, 0) || math.IsNaN(q) {
		return value.Zero, false
	}
	return fromFloat(q), true
}

// roundHalfPositive rounds x to the nearest integer, rounding halfway cases
// towards positive infinity, so 2.5 becomes 3 and -2.5 becomes -2.
func roundHalfPositive(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// fromFloat converts a finite float64 to a fixed-point number, rounding the
// fractional part to value.Scale digits. A fractional part that rounds up to a
// whole, like the one of 0.9999996, carries into the integer part.
func fromFloat(f float64) value.Fixed {
	if f == 0 {
		return value.Zero
	}

	neg := f < 0
	abs := math.Abs(f)
	intPart := math.Floor(abs)

	var frac string
	if fracPart := abs - intPart; fracPart > 0 {
		digits := roundHalfPositive(fracPart * pow10Scale)
		if digits == pow10Scale {
			next := intPart + 1
			if neg {
				next = -next
			}
			return fromFloat(next)
		}
		frac = fmt.Sprintf("%0*d", value.Scale, int64(digits))
	}

	integer, _ := new(big.Float).SetFloat64(intPart).Int(nil)
	return value.FromParts(neg, integer, frac)
}
