package parser

import (
	"github.com/tsatke/calc/internal/token"
)

func (suite *ParserSuite) TestEmptyOrIncomplete() {
	for _, input := range []string{"", "-", ".", "   ", " - ", "\t.\n"} {
		suite.assertKind(input, EmptyOrIncomplete)
	}
}

func (suite *ParserSuite) TestIntegers() {
	suite.assertNumber("0", "0", "000000", 0)
	suite.assertNumber("7", "7", "000000", 1)
	suite.assertNumber("007", "7", "000000", 1)
	suite.assertNumber("-42", "-42", "000000", -1)
	suite.assertNumber("5.", "5", "000000", 1)
	suite.assertNumber("-0", "0", "000000", 0)
}

func (suite *ParserSuite) TestFractions() {
	suite.assertNumber("1.5", "1", "500000", 1)
	suite.assertNumber(".5", "0", "500000", 1)
	suite.assertNumber("-0.5", "0", "500000", -1)
	suite.assertNumber("-12.000001", "-12", "000001", -1)
	suite.assertNumber("3.141592", "3", "141592", 1)
}

func (suite *ParserSuite) TestFractionTruncation() {
	suite.assertNumber("1.1234567", "1", "123456", 1)
	suite.assertNumber("1.0000005", "1", "000000", 1)
	suite.assertNumber("0.9999999", "0", "999999", 1)
}

func (suite *ParserSuite) TestGroupingSpaces() {
	suite.assertNumber("1 234.56", "1234", "560000", 1)
	suite.assertNumber("12 345 678", "12345678", "000000", 1)
	suite.assertNumber("-1 234", "-1234", "000000", -1)
	suite.assertNumber("- 1 234", "-1234", "000000", -1)
	suite.assertNumber(" 123 456 ", "123456", "000000", 1)
	suite.assertNumber("123 .5", "123", "500000", 1)
	suite.assertNumber("1\u00a0234", "1234", "000000", 1)
}

func (suite *ParserSuite) TestBadSpacing() {
	suite.assertKindAt("1 23 4", BadSpacing, token.Position{Col: 3, Offset: 2})
	suite.assertKindAt("1  234", BadSpacing, token.Position{Col: 2, Offset: 1})
	suite.assertKindAt("1234 567", BadSpacing, token.Position{Col: 1, Offset: 0})
	suite.assertKindAt("1 2345", BadSpacing, token.Position{Col: 3, Offset: 2})
	suite.assertKindAt("1.5 ", BadSpacing, token.Position{Col: 4, Offset: 3})
	suite.assertKindAt("1.2 3", BadSpacing, token.Position{Col: 4, Offset: 3})
	suite.assertKindAt("1\t\t234", BadSpacing, token.Position{Col: 2, Offset: 1})
}

func (suite *ParserSuite) TestBadFormat() {
	suite.assertKind("-.5", BadFormat)
	suite.assertKind("-.", BadFormat)
	suite.assertKindAt("12a", BadFormat, token.Position{Col: 3, Offset: 2})
	suite.assertKindAt("1-2", BadFormat, token.Position{Col: 2, Offset: 1})
	suite.assertKindAt("--1", BadFormat, token.Position{Col: 2, Offset: 1})
	suite.assertKindAt("1.2.3", BadFormat, token.Position{Col: 4, Offset: 3})
	suite.assertKindAt("1,5", BadFormat, token.Position{Col: 2, Offset: 1})
	suite.assertKindAt("1.-5", BadFormat, token.Position{Col: 3, Offset: 2})
}

func (suite *ParserSuite) TestRange() {
	suite.assertNumber("1 000 000 000 000", "1000000000000", "000000", 1)
	suite.assertNumber("-1000000000000", "-1000000000000", "000000", -1)
	suite.assertKind("1000000000001", OutOfRange)
	suite.assertKind("-1000000000001", OutOfRange)
	suite.assertKind("1000000000000.5", OutOfRange)
	suite.assertKind("99999999999999999999999999", OutOfRange)
}

func (suite *ParserSuite) TestRangeIsApproximate() {
	// 10^12 + 10^-6 is not representable as a float64 and rounds to 10^12,
	// so the range check accepts it.
	suite.assertNumber("1000000000000.000001", "1000000000000", "000001", 1)
}

func (suite *ParserSuite) TestErrorMessage() {
	_, err := Parse("1 23 4")
	suite.EqualError(err, `misplaced grouping spaces at col=3,offset=2: "1 23 4"`)

	_, err = Parse("")
	suite.EqualError(err, `enter a number: ""`)
}

func (suite *ParserSuite) TestKindString() {
	suite.Equal("EMPTY_OR_INCOMPLETE", EmptyOrIncomplete.String())
	suite.Equal("BAD_SPACING", BadSpacing.String())
	suite.Equal("BAD_FORMAT", BadFormat.String())
	suite.Equal("OUT_OF_RANGE", OutOfRange.String())
	suite.Equal("UNKNOWN", Kind(200).String())
	suite.Equal("number out of range", OutOfRange.Message())
}
