package parser

import (
	"strings"
	"unicode"
)

// Normalize cleans up raw user input into a literal that Parse understands.
// It removes every rune that is not a digit, whitespace, '.', ',' or '-',
// turns a decimal comma into a decimal point, and collapses repeated signs
// and decimal points:
//
//	Normalize("1,5")      // "1.5"
//	Normalize("$ 1 234")  // " 1 234"
//	Normalize("1.2.3")    // "1.23"
//	Normalize("12-")      // "-12"
//	Normalize("7-1-2")    // "-12"
//
// When there is more than one '-', everything before the first '-' is dropped
// and a single leading '-' is kept. A single '-' that is not the first rune is
// moved to the front. Normalize is idempotent.
func Normalize(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case isDigit(r), r == '.', r == '-', unicode.IsSpace(r):
			return r
		case r == ',':
			return '.'
		}
		return -1
	}, raw)

	return collapsePoints(collapseMinus(cleaned))
}

func collapseMinus(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	if parts := strings.Split(s, "-"); len(parts) > 2 {
		s = "-" + strings.Join(parts[1:], "")
	}
	if strings.LastIndex(s, "-") > 0 {
		s = "-" + strings.ReplaceAll(s, "-", "")
	}
	return s
}

func collapsePoints(s string) string {
	if strings.Count(s, ".") <= 1 {
		return s
	}
	parts := strings.Split(s, ".")
	return parts[0] + "." + strings.Join(parts[1:], "")
}

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
