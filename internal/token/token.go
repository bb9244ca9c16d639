package token

import (
	"fmt"
)

// Token describes a single lexical element of a decimal literal,
// such as a run of digits or a grouping space.
type Token interface {
	Value() string
	Length() int
	Pos() Position
	Is(Type) bool
	Type() Type
}

// Position describes the position of a token inside the literal.
// Col is 1-based and counts runes, Offset is 0-based and counts bytes.
type Position struct {
	Col    int
	Offset int
}

// New creates a new token from the given arguments.
func New(value string, pos Position, typ Type) Token {
	return tok{
		value: value,
		pos:   pos,
		typ:   typ,
	}
}

type tok struct {
	value string
	pos   Position
	typ   Type
}

// Is determines whether this token has the given type.
func (t tok) Is(typ Type) bool {
	return t.typ == typ
}

// Value returns the token value.
func (t tok) Value() string {
	return t.value
}

// Length returns the length of the token Value in bytes.
func (t tok) Length() int {
	return len(t.value)
}

func (t tok) Pos() Position {
	return t.pos
}

func (t tok) Type() Type {
	return t.typ
}

func (t tok) String() string {
	return fmt.Sprintf("(%s) %q (type=%v)", t.Pos(), t.Value(), t.Type())
}

func (t tok) GoString() string {
	return fmt.Sprintf(`token.New(%q, token.Position{%d, %d}, token.%s)`, t.value, t.pos.Col, t.pos.Offset, t.typ)
}

func (p Position) String() string {
	return fmt.Sprintf("col=%d,offset=%d", p.Col, p.Offset)
}
