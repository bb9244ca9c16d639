package calc

import (
	"errors"
	"fmt"
)

// OverflowText is the text of a result that lies outside of the supported range.
const OverflowText = "out of range"

// Result is the outcome of Calculate.
type Result struct {
	// Value is the computed number, which may lie outside of the supported
	// range.
	Value Number
	// Overflow is set if Value lies outside of the supported range.
	Overflow bool
	// Text is the formatted value, or OverflowText.
	Text string
	// Explanation describes the calculation, e.g. "Sum of 1 and 2 = 3".
	Explanation string
}

var explanations = map[Operation]string{
	Addition:       "Sum",
	Subtraction:    "Difference",
	Multiplication: "Product",
	Division:       "Quotient",
}

// Calculate validates both texts, applies the operation and formats the
// result. Invalid texts are reported as *ValidationError, joined if both
// are invalid. An overflowing result is not an error, but sets
// Result.Overflow.
func (c *Calculator) Calculate(op Operation, rawA, rawB string) (Result, error) {
	if !op.Valid() {
		return Result{}, ErrUnknownOperation
	}

	a, errA := c.Validate(rawA)
	b, errB := c.Validate(rawB)
	if err := errors.Join(errA, errB); err != nil {
		return Result{}, err
	}

	n, err := c.Compute(op, a, b)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Value:    n,
		Overflow: c.IsOverflowing(n),
	}
	if res.Overflow {
		res.Text = OverflowText
	} else {
		res.Text = c.Format(n)
	}
	res.Explanation = fmt.Sprintf("%s of %s and %s = %s", explanations[op], c.Format(a), c.Format(b), res.Text)
	return res, nil
}
