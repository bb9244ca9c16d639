// Package format renders fixed-point numbers for display.
package format

import (
	"fmt"
	"strings"

	"github.com/tsatke/calc/internal/value"
)

// Style determines how negative numbers are rendered.
type Style uint8

const (
	// StyleMinus renders negative numbers with a leading minus, e.g. "-1 234.5".
	// This is the canonical style.
	StyleMinus Style = iota
	// StyleParens renders negative numbers in parentheses, e.g. "(1 234.5)".
	StyleParens
)

// GroupSeparator separates groups of three integer digits.
const GroupSeparator = " "

func (s Style) String() string {
	switch s {
	case StyleMinus:
		return "minus"
	case StyleParens:
		return "parens"
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// ParseStyle returns the style with the given name, as returned by
// Style.String.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "minus":
		return StyleMinus, nil
	case "parens", "parentheses":
		return StyleParens, nil
	}
	return 0, fmt.Errorf("unknown negative style %q", name)
}

// Format renders v in the canonical style.
func Format(v value.Fixed) string {
	return StyleMinus.Format(v)
}

// Format renders v with its integer part grouped in threes and its
// fraction stripped of trailing zeros. The fraction and the decimal point
// are omitted if the number is whole.
func (s Style) Format(v value.Fixed) string {
	var b strings.Builder

	if v.IsNeg() {
		if s == StyleParens {
			b.WriteByte('(')
		} else {
			b.WriteByte('-')
		}
	}

	b.WriteString(Group(v.Magnitude().String()))
	if frac := strings.TrimRight(v.Fraction(), "0"); frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}

	if v.IsNeg() && s == StyleParens {
		b.WriteByte(')')
	}
	return b.String()
}

// Group inserts GroupSeparator between every three digits, counted from
// the right.
func Group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(GroupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
