package engine

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/tsatke/calc/internal/value"
)

// quoExact divides left by right and rounds the quotient half up to
// value.Scale digits.
//
// The quotient is first truncated to enough significant digits to hold its
// integer part and one more fractional digit than value.Scale, and then
// quantized. Truncating before rounding half up never changes the result,
// rounding twice would.
func quoExact(left, right value.Fixed) (value.Fixed, error) {
	x, _, err := apd.NewFromString(left.String())
	if err != nil {
		return value.Zero, fmt.Errorf("convert dividend: %w", err)
	}
	y, _, err := apd.NewFromString(right.String())
	if err != nil {
		return value.Zero, fmt.Errorf("convert divisor: %w", err)
	}

	// the integer part of the quotient has at most as many digits as the
	// scaled dividend
	precision := len(left.Scaled().String()) + value.Scale + 2
	ctx := apd.BaseContext.WithPrecision(uint32(precision))
	ctx.Rounding = apd.RoundDown

	var q apd.Decimal
	if _, err := ctx.Quo(&q, x, y); err != nil {
		return value.Zero, fmt.Errorf("quo: %w", err)
	}
	ctx.Rounding = apd.RoundHalfUp
	if _, err := ctx.Quantize(&q, &q, -value.Scale); err != nil {
		return value.Zero, fmt.Errorf("quantize: %w", err)
	}
	return fromDecimal(&q)
}

// fromDecimal converts a decimal with an exponent of -value.Scale.
func fromDecimal(d *apd.Decimal) (value.Fixed, error) {
	text := d.Text('f')
	neg := strings.HasPrefix(text, "-")
	digits := strings.Replace(strings.TrimPrefix(text, "-"), ".", "", 1)

	scaled, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return value.Zero, fmt.Errorf("unexpected decimal %q", text)
	}
	if neg {
		scaled.Neg(scaled)
	}
	return value.FromScaled(scaled), nil
}
