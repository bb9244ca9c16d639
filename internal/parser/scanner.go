package parser

import "github.com/tsatke/calc/internal/token"

type scanner interface {
	next() (token.Token, bool)
	tkpos() token.Position
}

// state is the position bookkeeping of a scanner. start* point to the first
// rune of the token that is currently being scanned, the other fields to the
// next rune that has not been consumed yet.
type state struct {
	start       int
	startCol    int
	startOffset int

	pos    int
	col    int
	offset int
}
