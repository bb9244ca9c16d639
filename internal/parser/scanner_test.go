package parser

import (
	"github.com/tsatke/calc/internal/token"
)

func (suite *ScannerSuite) TestEmptyInput() {
	suite.assertTokens(``, []token.Token{})
}

func (suite *ScannerSuite) TestDigits() {
	suite.assertTokens(`1234`, []token.Token{
		token.New("1234", token.Position{Col: 1, Offset: 0}, token.Digits),
	})
}

func (suite *ScannerSuite) TestLiteral() {
	suite.assertTokens(`-1 234.5`, []token.Token{
		token.New("-", token.Position{Col: 1, Offset: 0}, token.Minus),
		token.New("1", token.Position{Col: 2, Offset: 1}, token.Digits),
		token.New(" ", token.Position{Col: 3, Offset: 2}, token.Space),
		token.New("234", token.Position{Col: 4, Offset: 3}, token.Digits),
		token.New(".", token.Position{Col: 7, Offset: 6}, token.Point),
		token.New("5", token.Position{Col: 8, Offset: 7}, token.Digits),
	})
}

func (suite *ScannerSuite) TestWhitespaceRuns() {
	suite.assertTokens("1 \t2", []token.Token{
		token.New("1", token.Position{Col: 1, Offset: 0}, token.Digits),
		token.New(" \t", token.Position{Col: 2, Offset: 1}, token.Space),
		token.New("2", token.Position{Col: 4, Offset: 3}, token.Digits),
	})
}

func (suite *ScannerSuite) TestMultiByteRunes() {
	suite.assertTokens("€12\u00a03", []token.Token{
		token.New("€", token.Position{Col: 1, Offset: 0}, token.Error),
		token.New("12", token.Position{Col: 2, Offset: 3}, token.Digits),
		token.New("\u00a0", token.Position{Col: 4, Offset: 5}, token.Space),
		token.New("3", token.Position{Col: 5, Offset: 7}, token.Digits),
	})
}

func (suite *ScannerSuite) TestErrorRunes() {
	suite.assertTokens(`1e5`, []token.Token{
		token.New("1", token.Position{Col: 1, Offset: 0}, token.Digits),
		token.New("e", token.Position{Col: 2, Offset: 1}, token.Error),
		token.New("5", token.Position{Col: 3, Offset: 2}, token.Digits),
	})
}
