package engine

import (
	"math/big"

	"github.com/tsatke/calc/internal/value"
)

// add and subtract work on the operands scaled by 10^value.Scale, which
// makes them exact. Both operands already have value.Scale digits, so the
// result never has to be truncated.
func (e *Engine) add(left, right value.Fixed) value.Fixed {
	if left.IsWhole() && right.IsWhole() {
		return value.FromParts(false, new(big.Int).Add(left.Integer(), right.Integer()), "")
	}
	sum := new(big.Int).Add(left.Scaled(), right.Scaled())
	return value.FromScaled(sum)
}

func (e *Engine) subtract(left, right value.Fixed) value.Fixed {
	if left.IsWhole() && right.IsWhole() {
		return value.FromParts(false, new(big.Int).Sub(left.Integer(), right.Integer()), "")
	}
	diff := new(big.Int).Sub(left.Scaled(), right.Scaled())
	return value.FromScaled(diff)
}

// multiply is exact up to the rounding of the product to value.Scale
// fractional digits, which is done half up.
func (e *Engine) multiply(left, right value.Fixed) value.Fixed {
	if left.IsWhole() && right.IsWhole() {
		return value.FromParts(false, new(big.Int).Mul(left.Integer(), right.Integer()), "")
	}

	product := new(big.Int).Mul(left.Scaled(), right.Scaled())
	neg := product.Sign() < 0
	digits := product.Abs(product).String()
	integer, fraction := splitDigits(digits, 2*value.Scale)

	fraction, carry := roundHalfUp(fraction, value.Scale)
	mag, _ := new(big.Int).SetString(integer, 10)
	if carry {
		mag.Add(mag, big.NewInt(1))
	}
	return value.FromParts(neg, mag, fraction)
}

func (e *Engine) divide(left, right value.Fixed) (value.Fixed, error) {
	if right.IsZero() {
		return value.Zero, &Error{
			Kind: DivisionByZero,
			Op:   Divide,
		}
	}

	if e.division == DivisionExact {
		return quoExact(left, right)
	}
	q, ok := quoFloat(left, right)
	if !ok {
		return quoExact(left, right)
	}
	return q, nil
}

// splitDigits splits a string of digits into an integer and a fractional
// part, where the fractional part consists of the last scale digits. The
// digits are left-padded with zeros, so that the integer part is never empty.
func splitDigits(digits string, scale int) (integer, fraction string) {
	for len(digits) < scale+1 {
		digits = "0" + digits
	}
	return digits[:len(digits)-scale], digits[len(digits)-scale:]
}
