package engine

import (
	"errors"
	"strings"

	"github.com/tsatke/calc/internal/value"
)

func (suite *EngineSuite) TestAdd() {
	suite.runBinopTests(Add, []binopTest{
		{"1", "2", "3"},
		{"0.1", "0.2", "0.3"},
		{"-0.5", "0.25", "-0.25"},
		{"-1", "0.5", "-0.5"},
		{"1.999999", "0.000001", "2"},
		{"-1.000001", "1.000001", "0"},
		{"1000000000000", "1000000000000", "2000000000000"},
		{"123456789012345678901234567890", "1", "123456789012345678901234567891"},
	})
}

func (suite *EngineSuite) TestSubtract() {
	suite.runBinopTests(Subtract, []binopTest{
		{"3", "5", "-2"},
		{"0.3", "0.1", "0.2"},
		{"1", "1.5", "-0.5"},
		{"-1.25", "-1.25", "0"},
		{"0", "0.000001", "-0.000001"},
		{"-1000000000000", "1", "-1000000000001"},
	})
}

func (suite *EngineSuite) TestMultiply() {
	suite.runBinopTests(Multiply, []binopTest{
		{"2", "3", "6"},
		{"-4", "3", "-12"},
		{"1.5", "1.5", "2.25"},
		{"-0.5", "0.5", "-0.25"},
		{"-0.5", "-0.5", "0.25"},
		{"123.456789", "1000", "123456.789"},
		{"0", "-1.5", "0"},
		{"1000000000000", "2", "2000000000000"},
	})
}

func (suite *EngineSuite) TestMultiplyRoundsHalfUp() {
	suite.runBinopTests(Multiply, []binopTest{
		// 0.0000005
		{"0.000001", "0.5", "0.000001"},
		// 0.0000004
		{"0.000001", "0.4", "0"},
		// 0.0000015
		{"0.000003", "0.5", "0.000002"},
		// 0.00000049999
		{"0.099999", "0.000005", "0"},
		// -0.0000005, rounding is symmetric
		{"-0.000001", "0.5", "-0.000001"},
	})
}

func (suite *EngineSuite) TestMultiplyCarriesIntoIntegerPart() {
	suite.runBinopTests(Multiply, []binopTest{
		// 0.9999995
		{"1.999999", "0.5", "1"},
		// -0.9999995
		{"-1.999999", "0.5", "-1"},
		// 9.9999995
		{"19.999999", "0.5", "10"},
		// 2.9999985
		{"1.999999", "1.5", "2.999999"},
	})
}

func (suite *EngineSuite) TestDivideFloat() {
	suite.runBinopTests(Divide, []binopTest{
		{"1", "3", "0.333333"},
		{"2", "3", "0.666667"},
		{"10", "4", "2.5"},
		{"1", "8", "0.125"},
		{"-7", "3", "-2.333333"},
		{"-1", "2", "-0.5"},
		{"0", "5", "0"},
		{"123456.789", "0.001", "123456789"},
		{"1000000000000", "0.000001", "1000000000000000000"},
	})
}

func (suite *EngineSuite) TestDivideFloatIsApproximate() {
	// The float64 quotient of 10^12 / 3 is 333333333333.33331298828125,
	// which is not the exact quotient rounded to six digits.
	suite.runBinopTests(Divide, []binopTest{
		{"1000000000000", "3", "333333333333.333313"},
		{"999999999999.999999", "7", "142857142857.142853"},
	})
}

func (suite *EngineSuite) TestDivideExact() {
	suite.engine = New(WithDivision(DivisionExact))
	suite.runBinopTests(Divide, []binopTest{
		{"1", "3", "0.333333"},
		{"2", "3", "0.666667"},
		{"1", "7", "0.142857"},
		{"10", "4", "2.5"},
		{"-1", "2", "-0.5"},
		{"0.000001", "2", "0.000001"},
		{"-0.000001", "2", "-0.000001"},
		{"0.000001", "3", "0"},
		{"1000000000000", "3", "333333333333.333333"},
		{"999999999999.999999", "7", "142857142857.142857"},
		{"1000000000000", "0.000001", "1000000000000000000"},
		{"0", "-3", "0"},
	})
}

func (suite *EngineSuite) TestDivideFallsBackToExactForHugeOperands() {
	left := fixed("2" + zeros(400))
	right := fixed("4" + zeros(399))

	got, err := suite.engine.Compute(Divide, left, right)
	suite.Require().NoError(err)
	suite.assertFixed("5", got)
}

func (suite *EngineSuite) TestDivisionByZero() {
	for _, division := range []Division{DivisionFloat, DivisionExact} {
		suite.Run("division="+division.String(), func() {
			e := New(WithDivision(division))
			_, err := e.Compute(Divide, fixed("1"), value.Zero)
			suite.Require().Error(err)

			var eerr *Error
			suite.Require().True(errors.As(err, &eerr))
			suite.Equal(DivisionByZero, eerr.Kind)
			suite.Equal(Divide, eerr.Op)
			suite.EqualError(err, "division by zero")

			_, err = e.Compute(Divide, fixed("1"), fixed("-0.000000"))
			suite.Error(err)
		})
	}
}

func (suite *EngineSuite) TestUnknownOperation() {
	_, err := suite.engine.Compute(OpUnknown, fixed("1"), fixed("2"))
	suite.EqualError(err, "unknown operation unknown")
}

func (suite *EngineSuite) TestAddSubtractRoundTrip() {
	operands := []string{"0", "1", "-1", "0.000001", "-0.999999", "123.456789", "-987654.321", "1000000000000", "-1000000000000", "0.5"}
	for _, a := range operands {
		for _, b := range operands {
			sum, err := suite.engine.Compute(Add, fixed(a), fixed(b))
			suite.Require().NoError(err)
			back, err := suite.engine.Compute(Subtract, sum, fixed(b))
			suite.Require().NoError(err)
			suite.assertFixed(a, back, "(%s + %s) - %s", a, b, b)
		}
	}
}

func (suite *EngineSuite) TestCommutativity() {
	operands := []string{"0", "2", "-3", "0.000001", "-0.5", "1.999999", "123.456789", "-1000000000000"}
	for _, op := range []Op{Add, Multiply} {
		for _, a := range operands {
			for _, b := range operands {
				ab, err := suite.engine.Compute(op, fixed(a), fixed(b))
				suite.Require().NoError(err)
				ba, err := suite.engine.Compute(op, fixed(b), fixed(a))
				suite.Require().NoError(err)
				suite.Truef(ab.Equal(ba), "%s %s %s: %s != %s", a, op.Symbol(), b, ab, ba)
			}
		}
	}
}

func (suite *EngineSuite) TestOverflowIsNotAnError() {
	got, err := suite.engine.Compute(Multiply, fixed("1000000000000"), fixed("2"))
	suite.NoError(err)
	suite.True(got.IsOverflowing())
}

func zeros(n int) string {
	return strings.Repeat("0", n)
}
