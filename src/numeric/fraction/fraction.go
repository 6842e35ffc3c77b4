// Package fraction implements exact rational numbers over the built-in signed
// integer types.
//
// A Fraction is always held in canonical form: reduced to lowest terms, with
// the sign on the numerator and a positive denominator. The single exception
// is the undefined value 1/0, produced by division by zero, which propagates
// through arithmetic instead of being reported as an error.
//
// Arithmetic follows the sign conventions of the underlying integer type,
// and the plain operators wrap on overflow. The Checked variants report
// ErrOverflow instead.
package fraction

// Fraction is a rational number num/den. Construct values with New, FromInt,
// Fr or one of the fallible conversions; the zero value is not canonical.
//
// Two fractions holding the same rational value always have identical fields,
// so == and Equal agree with value equality.
type Fraction[T Integer] struct {
	num T
	den T
}

// New returns num/den in canonical form, or the undefined value if den is 0.
// A den of the type's minimum value cannot be negated when the reduced
// fraction still carries it, e.g. 1/MinInt64; the result then keeps a
// negative denominator and is not valid. Use CheckedNew to reject such input.
func New[T Integer](num, den T) Fraction[T] {
	// den is tested first, so 0/0 is undefined rather than zero
	if den == 0 {
		return Undefined[T]()
	}
	if num == 0 {
		return Fraction[T]{num: 0, den: 1}
	}

	g := gcd(num, den)
	num, den = num/g, den/g

	if den < 0 {
		num, den = -num, -den
	}

	return Fraction[T]{num: num, den: den}
}

// FromInt returns v/1.
func FromInt[T Integer](v T) Fraction[T] {
	return Fraction[T]{num: v, den: 1}
}

// Fr returns num divided by den, each first taken as an integer fraction.
// The result is the same as New(num, den).
func Fr[T Integer](num, den T) Fraction[T] {
	return FromInt(num).Div(FromInt(den))
}

// Undefined returns the value produced by division by zero, 1/0.
func Undefined[T Integer]() Fraction[T] {
	return Fraction[T]{num: 1, den: 0}
}

// Zero returns 0/1.
func Zero[T Integer]() Fraction[T] {
	return Fraction[T]{num: 0, den: 1}
}

func (x Fraction[T]) Num() T {
	return x.num
}

func (x Fraction[T]) Den() T {
	return x.den
}

// IsUndefined reports whether x is the division-by-zero value.
func (x Fraction[T]) IsUndefined() bool {
	return x.den == 0
}

func (x Fraction[T]) IsZero() bool {
	return x.num == 0 && x.den != 0
}

// IsInt reports whether x is a whole number.
func (x Fraction[T]) IsInt() bool {
	return x.den == 1
}

// IsValid reports whether x is canonical or undefined. Values obtained from
// this package are always valid; the zero value of Fraction is not.
func (x Fraction[T]) IsValid() bool {
	if x.den == 0 {
		return x.num == 1
	}
	if x.den < 0 {
		return false
	}
	if x.num == 0 {
		return x.den == 1
	}
	g := gcd(x.num, x.den)
	return g == 1 || g == -1
}

// Sign returns -1, 0 or +1. The undefined value is positive.
func (x Fraction[T]) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	default:
		return 0
	}
}
