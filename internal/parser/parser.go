package parser

import (
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/tsatke/calc/internal/token"
	"github.com/tsatke/calc/internal/value"
)

// Parse parses a single decimal literal into a fixed-point number.
// The input is expected to be normalized (see Normalize), anything that
// Normalize would have removed or rearranged is reported as BadFormat.
//
// The integer part may be split into groups of thousands by single spaces,
// where the first group has one to three digits and every following group
// exactly three. Fractional digits beyond value.Scale are truncated.
//
// If the literal is rejected, the returned error is of type *Error.
func Parse(input string) (value.Fixed, error) {
	p := newParser(input)
	return p.parse()
}

// literal is the structure of a decimal literal as it was written, before
// it is converted to a number.
type literal struct {
	neg      bool
	point    bool
	integer  []token.Token // Digits and Space tokens before the point
	fraction []token.Token // Digits and Space tokens after the point
}

type parser struct {
	scanner

	input string
}

func newParser(input string) *parser {
	return &parser{
		scanner: newInMemoryScanner(input),
		input:   input,
	}
}

func (p *parser) parse() (value.Fixed, error) {
	if incomplete(p.input) {
		return value.Zero, newError(EmptyOrIncomplete, p.input)
	}

	lit, err := p.literal()
	if err != nil {
		return value.Zero, err
	}
	if err := p.checkSpacing(lit); err != nil {
		return value.Zero, err
	}
	num, err := p.number(lit)
	if err != nil {
		return value.Zero, err
	}
	if !num.InRange() {
		return value.Zero, newError(OutOfRange, p.input)
	}
	return num, nil
}

// incomplete reports whether the input, ignoring whitespace, is something
// a user types on the way to a number, but that is not a number yet.
func incomplete(input string) bool {
	switch stripSpace(input) {
	case "", "-", ".":
		return true
	}
	return false
}

func (p *parser) literal() (literal, error) {
	var lit literal
	var seenDigits bool
	for {
		tk, ok := p.next()
		if !ok {
			break
		}
		switch tk.Type() {
		case token.Error:
			return lit, newErrorAt(BadFormat, p.input, tk)
		case token.Minus:
			if lit.neg || seenDigits || lit.point {
				return lit, newErrorAt(BadFormat, p.input, tk)
			}
			lit.neg = true
		case token.Point:
			if lit.point {
				return lit, newErrorAt(BadFormat, p.input, tk)
			}
			lit.point = true
		case token.Digits, token.Space:
			if tk.Is(token.Digits) {
				seenDigits = true
			}
			if lit.point {
				lit.fraction = append(lit.fraction, tk)
			} else {
				lit.integer = append(lit.integer, tk)
			}
		default:
			return lit, newErrorAt(BadFormat, p.input, tk)
		}
	}
	return lit, nil
}

// checkSpacing validates the grouping spaces of the literal. Leading and
// trailing single spaces of the integer part are tolerated.
func (p *parser) checkSpacing(lit literal) error {
	for _, tk := range lit.fraction {
		if tk.Is(token.Space) {
			return newErrorAt(BadSpacing, p.input, tk)
		}
	}

	var spaced bool
	for _, tk := range lit.integer {
		if tk.Is(token.Space) {
			spaced = true
			if utf8.RuneCountInString(tk.Value()) > 1 {
				return newErrorAt(BadSpacing, p.input, tk)
			}
		}
	}
	if !spaced {
		return nil
	}

	group := 0
	for _, tk := range lit.integer {
		if !tk.Is(token.Digits) {
			continue
		}
		if group == 0 {
			if tk.Length() > 3 {
				return newErrorAt(BadSpacing, p.input, tk)
			}
		} else if tk.Length() != 3 {
			return newErrorAt(BadSpacing, p.input, tk)
		}
		group++
	}
	return nil
}

func (p *parser) number(lit literal) (value.Fixed, error) {
	intDigits := digits(lit.integer)
	if lit.neg && intDigits == "" {
		// a sign without any integer digits, e.g. "-.5"
		return value.Zero, newError(BadFormat, p.input)
	}

	integer := new(big.Int)
	if intDigits != "" {
		if _, ok := integer.SetString(intDigits, 10); !ok {
			return value.Zero, newError(BadFormat, p.input)
		}
	}
	return value.FromParts(lit.neg, integer, digits(lit.fraction)), nil
}

func digits(tokens []token.Token) string {
	var b strings.Builder
	for _, tk := range tokens {
		if tk.Is(token.Digits) {
			b.WriteString(tk.Value())
		}
	}
	return b.String()
}
