package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/tsatke/calc/internal/token"
)

type inMemoryScanner struct {
	input []rune

	state
}

func newInMemoryScanner(source string) *inMemoryScanner {
	return &inMemoryScanner{
		input: []rune(source),
		state: state{
			startCol: 1,
			col:      1,
		},
	}
}

func (s *inMemoryScanner) next() (token.Token, bool) {
	return s.computeNext()
}

func (s *inMemoryScanner) updateStartPositions() {
	s.start = s.pos
	s.startCol = s.col
	s.startOffset = s.offset
}

func (s *inMemoryScanner) token(typ token.Type) token.Token {
	tok := token.New(s.candidate(), s.tkpos(), typ)
	s.updateStartPositions()
	return tok
}

func (s *inMemoryScanner) candidate() string {
	return string(s.input[s.start:s.pos])
}

func (s *inMemoryScanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *inMemoryScanner) lookahead() (rune, bool) {
	if !s.done() {
		return s.input[s.pos], true
	}
	return 0, false
}

func (s *inMemoryScanner) consume() {
	s.offset += utf8.RuneLen(s.input[s.pos])
	s.col++
	s.pos++
}

// consumeWhile consumes runes as long as they match the given predicate
// and returns the amount of consumed runes.
func (s *inMemoryScanner) consumeWhile(match func(rune) bool) int {
	n := 0
	for {
		r, ok := s.lookahead()
		if !(ok && match(r)) {
			return n
		}
		s.consume()
		n++
	}
}

func (s *inMemoryScanner) tkpos() token.Position {
	return token.Position{
		Col:    s.startCol,
		Offset: s.startOffset,
	}
}

func (s *inMemoryScanner) computeNext() (token.Token, bool) {
	r, ok := s.lookahead()
	if !ok {
		return nil, false
	}
	switch {
	case isDigit(r):
		s.consumeWhile(isDigit)
		return s.token(token.Digits), true
	case unicode.IsSpace(r):
		s.consumeWhile(unicode.IsSpace)
		return s.token(token.Space), true
	case r == '.':
		s.consume()
		return s.token(token.Point), true
	case r == '-':
		s.consume()
		return s.token(token.Minus), true
	}
	s.consume()
	return s.token(token.Error), true
}

// isDigit only accepts ASCII digits, other Unicode digits can not be
// converted to a number.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
