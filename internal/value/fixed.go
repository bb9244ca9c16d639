package value

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Scale is the number of decimal digits kept after the decimal point.
const Scale = 6

// The supported display range, inclusive on both ends.
const (
	MinValue = -1e12
	MaxValue = 1e12
)

const zeroFraction = "000000"

var (
	ten = big.NewInt(10)
	// unit is 10^Scale, the scaled representation of 1.
	unit = new(big.Int).Exp(ten, big.NewInt(Scale), nil)
)

// Fixed is a fixed-point decimal number, consisting of an arbitrary-precision
// integer part and exactly Scale fractional digits.
// The zero value is the number 0. A Fixed is immutable, every method that
// seems to modify it returns a new value.
//
// The sign is carried by the number as a whole, so -0.5 has an integer part of
// 0 and is still negative.
type Fixed struct {
	neg     bool
	integer *big.Int // magnitude of the integer part, nil is 0
	frac    string   // exactly Scale digits, empty is all zeros
}

// Zero is the fixed-point number 0.
var Zero = Fixed{}

// FromParts creates a new number from the given sign, integer magnitude and
// fractional digits. A negative integer also makes the number negative.
// The fraction is right-padded with zeros or truncated to Scale digits.
// FromParts panics if the fraction contains anything other than ASCII digits.
func FromParts(neg bool, integer *big.Int, fraction string) Fixed {
	for i := 0; i < len(fraction); i++ {
		if fraction[i] < '0' || fraction[i] > '9' {
			panic(fmt.Sprintf("FromParts: invalid fractional digits %q", fraction))
		}
	}
	if len(fraction) > Scale {
		fraction = fraction[:Scale]
	} else if len(fraction) < Scale {
		fraction += zeroFraction[:Scale-len(fraction)]
	}

	mag := new(big.Int)
	if integer != nil {
		mag.Abs(integer)
		if integer.Sign() < 0 {
			neg = true
		}
	}
	return normalize(neg, mag, fraction)
}

// FromScaled creates a number from its value multiplied by 10^Scale,
// so FromScaled(big.NewInt(1500000)) is 1.5.
func FromScaled(scaled *big.Int) Fixed {
	mag := new(big.Int).Abs(scaled)
	rem := new(big.Int)
	mag.QuoRem(mag, unit, rem)

	frac := rem.String()
	if len(frac) < Scale {
		frac = zeroFraction[:Scale-len(frac)] + frac
	}
	return normalize(scaled.Sign() < 0, mag, frac)
}

// FromInt64 creates a whole number.
func FromInt64(i int64) Fixed {
	return FromParts(false, big.NewInt(i), "")
}

func normalize(neg bool, mag *big.Int, frac string) Fixed {
	if mag.Sign() == 0 && frac == zeroFraction {
		neg = false
	}
	return Fixed{
		neg:     neg,
		integer: mag,
		frac:    frac,
	}
}

// Integer returns the signed integer part. For numbers between -1 and 0
// this is 0, use Sign to obtain the sign in that case.
func (f Fixed) Integer() *big.Int {
	i := new(big.Int)
	if f.integer != nil {
		i.Set(f.integer)
	}
	if f.neg {
		i.Neg(i)
	}
	return i
}

// Magnitude returns the absolute value of the integer part.
func (f Fixed) Magnitude() *big.Int {
	if f.integer == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(f.integer)
}

// Fraction returns the Scale fractional digits.
func (f Fixed) Fraction() string {
	if f.frac == "" {
		return zeroFraction
	}
	return f.frac
}

// Scaled returns the signed value multiplied by 10^Scale.
func (f Fixed) Scaled() *big.Int {
	s := f.Magnitude()
	s.Mul(s, unit)
	frac, _ := new(big.Int).SetString(f.Fraction(), 10)
	s.Add(s, frac)
	if f.neg {
		s.Neg(s)
	}
	return s
}

// IsWhole reports whether all fractional digits are zero.
func (f Fixed) IsWhole() bool {
	return f.Fraction() == zeroFraction
}

// IsZero reports whether the number is 0.
func (f Fixed) IsZero() bool {
	return (f.integer == nil || f.integer.Sign() == 0) && f.IsWhole()
}

// IsNeg reports whether the number is less than 0.
func (f Fixed) IsNeg() bool {
	return f.neg
}

// Sign returns -1, 0 or +1.
func (f Fixed) Sign() int {
	switch {
	case f.IsZero():
		return 0
	case f.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns the number with the opposite sign.
func (f Fixed) Neg() Fixed {
	return normalize(!f.neg, f.Magnitude(), f.Fraction())
}

// Abs returns the absolute value of the number.
func (f Fixed) Abs() Fixed {
	return normalize(false, f.Magnitude(), f.Fraction())
}

// Cmp compares f and g and returns -1, 0 or +1.
func (f Fixed) Cmp(g Fixed) int {
	return f.Scaled().Cmp(g.Scaled())
}

// Equal reports whether f and g represent the same number.
func (f Fixed) Equal(g Fixed) bool {
	return f.Cmp(g) == 0
}

// Float64 returns the nearest float64 to the integer part, combined with the
// nearest float64 to the fractional part. This is an approximation and is only
// meant for range checks and for the floating-point division.
func (f Fixed) Float64() float64 {
	i, _ := new(big.Float).SetInt(f.Magnitude()).Float64()
	if f.IsWhole() {
		if f.neg {
			return -i
		}
		return i
	}
	frac, _ := strconv.ParseFloat("0."+f.Fraction(), 64)
	if f.neg {
		return -i - frac
	}
	return i + frac
}

// InRange reports whether the approximate value of the number lies within
// [MinValue, MaxValue].
func (f Fixed) InRange() bool {
	v := f.Float64()
	return v >= MinValue && v <= MaxValue
}

// IsOverflowing reports whether the number lies outside of the supported range.
func (f Fixed) IsOverflowing() bool {
	return !f.InRange()
}

// String returns the plain decimal representation of the number, without
// grouping and without trailing fractional zeros, e.g. "-1234.5".
func (f Fixed) String() string {
	var b strings.Builder
	if f.neg {
		b.WriteByte('-')
	}
	b.WriteString(f.Magnitude().String())
	if frac := strings.TrimRight(f.Fraction(), "0"); frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// GoString returns the number with all of its fractional digits.
func (f Fixed) GoString() string {
	sign := ""
	if f.neg {
		sign = "-"
	}
	return fmt.Sprintf("value.Fixed(%s%s.%s)", sign, f.Magnitude(), f.Fraction())
}
