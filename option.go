package calc

import (
	"go.uber.org/zap"

	"github.com/tsatke/calc/internal/format"
)

type Option func(*Calculator)

// NegativeStyle determines how Format renders negative numbers.
type NegativeStyle = format.Style

const (
	// NegativeMinus renders "-1 234.5". This is the default.
	NegativeMinus = format.StyleMinus
	// NegativeParens renders "(1 234.5)".
	NegativeParens = format.StyleParens
)

// ParseNegativeStyle returns the style named "minus" or "parens".
func ParseNegativeStyle(name string) (NegativeStyle, error) {
	return format.ParseStyle(name)
}

func WithNegativeStyle(style NegativeStyle) Option {
	return func(c *Calculator) {
		c.style = style
	}
}

// WithExactDivision makes the calculator divide the exact operands and round
// the quotient half up, instead of dividing float64 approximations.
func WithExactDivision() Option {
	return func(c *Calculator) {
		c.exact = true
	}
}

// WithLogger sets the logger that validations and computations are logged
// to, at debug level. By default, nothing is logged.
func WithLogger(log *zap.Logger) Option {
	return func(c *Calculator) {
		if log != nil {
			c.log = log
		}
	}
}

// WithoutNormalization makes Validate parse the text as it is. Anything that
// normalization would have cleaned up is rejected as BadFormat.
func WithoutNormalization() Option {
	return func(c *Calculator) {
		c.normalize = false
	}
}
