package fraction

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Float64 returns num/den as a float64. The undefined value gives +Inf.
func (x Fraction[T]) Float64() float64 {
	return float64(x.num) / float64(x.den)
}

// Float32 returns num/den as a float32.
func (x Fraction[T]) Float32() float32 {
	return float32(x.num) / float32(x.den)
}

// Rat returns x as a new big.Rat, or nil if x is undefined.
func (x Fraction[T]) Rat() *big.Rat {
	if x.den == 0 {
		return nil
	}
	return new(big.Rat).SetFrac(big.NewInt(int64(x.num)), big.NewInt(int64(x.den)))
}

// FromFloat converts the shortest decimal representation of v to a fraction,
// i.e. 0.1 becomes 1/10 rather than the exact binary value of the float.
//
// The value is scaled by 10**d, d being the number of decimal places, then
// rounded to an integer. ErrPrecision is returned if 10**d does not fit in T,
// and ErrOutOfRange if the scaled value does not.
func FromFloat[T Integer, F Float](v F) (Fraction[T], error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fraction[T]{}, errors.Wrapf(ErrNotFinite, "%v", f)
	}

	s := strconv.FormatFloat(f, 'f', -1, bitSize[F]())
	var digits int
	if _, frac, ok := strings.Cut(s, "."); ok {
		digits = len(frac)
	}

	limit := maxValue[T]() / 10
	multiplier := T(1)
	for i := 0; i < digits; i++ {
		if multiplier > limit {
			return Fraction[T]{}, errors.Wrapf(ErrPrecision, "%s has %d decimal places (%d bit)", s, digits, bitSize[T]())
		}
		multiplier *= 10
	}

	scaled := math.Round(f * float64(multiplier))
	if r := rangeLimit[T](); scaled >= r || scaled < -r {
		return Fraction[T]{}, errors.Wrapf(ErrOutOfRange, "%s (%d bit)", s, bitSize[T]())
	}

	return New(T(scaled), multiplier), nil
}

// FromFloat64 is FromFloat for float64 input.
func FromFloat64[T Integer](v float64) (Fraction[T], error) {
	return FromFloat[T](v)
}

// FromFloat32 is FromFloat for float32 input. The decimal places are those of
// the shortest float32 representation, so float32(0.1) gives 1/10.
func FromFloat32[T Integer](v float32) (Fraction[T], error) {
	return FromFloat[T](v)
}
