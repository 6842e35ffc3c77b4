package fraction

import (
	"strconv"
	"strings"
)

// String formats x with DefaultThreshold, see Text.
func (x Fraction[T]) String() string {
	return x.Text(DefaultThreshold)
}

// Text formats x as a decimal if its shortest float64 representation has at
// most threshold fractional digits, otherwise as num/den. Whole numbers are
// printed from the numerator directly, so they stay exact past 2**53, and a
// non-integer that float64 rounds to a whole number is printed as num/den.
// The undefined value is "+Inf".
func (x Fraction[T]) Text(threshold int) string {
	switch x.den {
	case 0:
		return "+Inf"
	case 1:
		return itoa(x.num)
	}
	s := strconv.FormatFloat(x.Float64(), 'f', -1, 64)
	if _, frac, ok := strings.Cut(s, "."); !ok || len(frac) > threshold {
		return x.RatString()
	}
	return s
}

// RatString formats x as num/den.
func (x Fraction[T]) RatString() string {
	return itoa(x.num) + "/" + itoa(x.den)
}

// MarshalText implements encoding.TextMarshaler using RatString.
func (x Fraction[T]) MarshalText() ([]byte, error) {
	return []byte(x.RatString()), nil
}
