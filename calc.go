// Package calc implements a fixed-point decimal calculator with six
// fractional digits. Numbers are parsed from text, where the integer part may
// be grouped in thousands by spaces, and results are formatted the same way.
//
// Addition, subtraction and multiplication are exact, apart from rounding
// products half up to six digits. Division uses float64 by default, see
// WithExactDivision.
package calc

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tsatke/calc/internal/engine"
	"github.com/tsatke/calc/internal/format"
	"github.com/tsatke/calc/internal/parser"
)

// Calculator validates, computes and formats numbers. A Calculator holds no
// state besides its configuration and is safe for concurrent use.
type Calculator struct {
	engine *engine.Engine
	log    *zap.Logger

	style     NegativeStyle
	exact     bool
	normalize bool
}

// New creates a new, ready to use Calculator, already applying all given
// options.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		log:       zap.NewNop(),
		style:     NegativeMinus,
		normalize: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	division := engine.DivisionFloat
	if c.exact {
		division = engine.DivisionExact
	}
	c.engine = engine.New(
		engine.WithDivision(division),
	)

	return c
}

// Normalize cleans up raw input text. It removes every character that
// can't be part of a number, replaces ',' with '.', keeps only the first
// decimal point and moves a minus sign to the front.
func (c *Calculator) Normalize(raw string) string {
	return parser.Normalize(raw)
}

// Validate parses the raw text into a number. Unless WithoutNormalization
// was given, the text is normalized first.
//
// If the text is rejected, the error is a *ValidationError.
func (c *Calculator) Validate(raw string) (Number, error) {
	input := raw
	if c.normalize {
		input = parser.Normalize(raw)
	}

	f, err := parser.Parse(input)
	if err != nil {
		var perr *parser.Error
		if !errors.As(err, &perr) {
			return Number{}, err
		}
		verr := validationErrorFromInternal(raw, perr)
		c.log.Debug("rejected input",
			zap.String("input", raw),
			zap.String("normalized", input),
			zap.Stringer("kind", verr.Kind),
		)
		return Number{}, verr
	}

	n := Number{f}
	c.log.Debug("validated input",
		zap.String("input", raw),
		zap.Stringer("value", n),
	)
	return n, nil
}

// Compute applies the operation to both numbers. The result is not range
// checked, use IsOverflowing on it.
//
// Division by zero fails with a *ComputeError.
func (c *Calculator) Compute(op Operation, a, b Number) (Number, error) {
	if !op.Valid() {
		return Number{}, ErrUnknownOperation
	}

	f, err := c.engine.Compute(op.internal(), a.fixed, b.fixed)
	if err != nil {
		var eerr *engine.Error
		if !errors.As(err, &eerr) {
			return Number{}, err
		}
		cerr := computeErrorFromInternal(op, eerr)
		c.log.Debug("computation failed",
			zap.Stringer("op", op),
			zap.Stringer("left", a),
			zap.Stringer("right", b),
			zap.Error(cerr),
		)
		return Number{}, cerr
	}

	n := Number{f}
	c.log.Debug("computed",
		zap.Stringer("op", op),
		zap.Stringer("left", a),
		zap.Stringer("right", b),
		zap.Stringer("result", n),
	)
	return n, nil
}

// IsOverflowing reports whether n lies outside of the range [-10^12, 10^12].
// The check uses the float64 approximation of n.
func (c *Calculator) IsOverflowing(n Number) bool {
	return n.fixed.IsOverflowing()
}

// Format renders n with its integer part grouped in threes, e.g.
// "-1 234 567.5", using the configured NegativeStyle.
func (c *Calculator) Format(n Number) string {
	return c.style.Format(n.fixed)
}

// CanCompute reports whether a calculation can be started, which is the
// case if both texts are valid numbers and an operation is selected.
func (c *Calculator) CanCompute(op Operation, rawA, rawB string) bool {
	if !op.Valid() {
		return false
	}
	if _, err := c.Validate(rawA); err != nil {
		return false
	}
	if _, err := c.Validate(rawB); err != nil {
		return false
	}
	return true
}

var defaultCalculator = New()

// Validate parses the raw text with the default calculator.
func Validate(raw string) (Number, error) {
	return defaultCalculator.Validate(raw)
}

// MustValidate is like Validate, but panics if the text is rejected.
// It is meant for literals that are known to be valid.
func MustValidate(raw string) Number {
	n, err := defaultCalculator.Validate(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// Compute applies the operation with the default calculator.
func Compute(op Operation, a, b Number) (Number, error) {
	return defaultCalculator.Compute(op, a, b)
}

// IsOverflowing reports whether n lies outside of the supported range.
func IsOverflowing(n Number) bool {
	return defaultCalculator.IsOverflowing(n)
}

// Format renders n in the canonical style, with a leading minus for
// negative numbers.
func Format(n Number) string {
	return format.Format(n.fixed)
}
