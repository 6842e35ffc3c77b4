package fraction

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// raw builds a Fraction without normalizing it.
func raw(num, den int64) Fraction[int64] {
	return Fraction[int64]{num: num, den: den}
}

func TestNew(t *testing.T) {
	for idx, tc := range []struct {
		num, den int64
		want     Fraction[int64]
	}{
		{6, 8, raw(3, 4)},
		{-6, 8, raw(-3, 4)},
		{6, -8, raw(-3, 4)},
		{-6, -8, raw(3, 4)},
		{2, -6, raw(-1, 3)},
		{7, 1, raw(7, 1)},
		{1, -1, raw(-1, 1)},
		{10, 5, raw(2, 1)},
		{-10, -5, raw(2, 1)},
		{17, 51, raw(1, 3)},

		// zero is always 0/1
		{0, 5, raw(0, 1)},
		{0, -5, raw(0, 1)},

		// zero denominator wins over zero numerator
		{5, 0, raw(1, 0)},
		{-5, 0, raw(1, 0)},
		{0, 0, raw(1, 0)},

		{math.MaxInt64, math.MaxInt64, raw(1, 1)},
		{math.MinInt64, math.MinInt64, raw(1, 1)},
		{math.MaxInt64, -1, raw(-math.MaxInt64, 1)},
		{math.MinInt64, 2, raw(math.MinInt64/2, 1)},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d", idx, tc.num, tc.den), func(t *testing.T) {
			result := New(tc.num, tc.den)
			require.Equal(t, tc.want, result)
			require.True(t, result.IsValid())
		})
	}
}

func TestNewMinDenominator(t *testing.T) {
	// -MinInt64 wraps, so the sign cannot move to the numerator
	r := New[int64](1, math.MinInt64)
	require.Equal(t, raw(-1, math.MinInt64), r)
	require.False(t, r.IsValid())

	// a factor of two lets the denominator be negated after reduction
	require.Equal(t, raw(-1, 1<<62), New[int64](2, math.MinInt64))

	_, err := CheckedNew[int64](1, math.MinInt64)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestNewAllSigns(t *testing.T) {
	for num := int8(-12); num <= 12; num++ {
		for den := int8(-12); den <= 12; den++ {
			if den == 0 {
				continue
			}
			r := New(num, den)
			require.Greater(t, r.Den(), int8(0), "%d/%d", num, den)
			require.True(t, r.IsValid(), "%d/%d -> %s", num, den, r.RatString())
			// value is preserved: r.num/r.den == num/den
			require.Equal(t, int(r.Num())*int(den), int(num)*int(r.Den()), "%d/%d", num, den)
		}
	}
}

func TestNewIdempotent(t *testing.T) {
	for _, r := range []Fraction[int64]{raw(3, 4), raw(-1, 3), raw(0, 1), raw(1, 0), raw(9, 1)} {
		require.Equal(t, r, New(r.Num(), r.Den()))
	}
}

func TestFromInt(t *testing.T) {
	require.Equal(t, raw(10, 1), FromInt[int64](10))
	require.Equal(t, raw(0, 1), FromInt[int64](0))
	require.Equal(t, raw(-3, 1), FromInt[int64](-3))
	require.Equal(t, float64(10), FromInt[int64](10).Float64())
}

func TestFr(t *testing.T) {
	require.Equal(t, raw(-1, 3), Fr[int64](2, -6))
	require.Equal(t, raw(3, 4), Fr[int64](3, 4))
	require.Equal(t, raw(1, 0), Fr[int64](3, 0))
	require.Equal(t, New[int64](14, 21), Fr[int64](14, 21))
}

func TestIsValid(t *testing.T) {
	for idx, tc := range []struct {
		r     Fraction[int64]
		valid bool
	}{
		{raw(3, 4), true},
		{raw(-3, 4), true},
		{raw(0, 1), true},
		{raw(1, 0), true},
		{raw(0, 0), false},
		{raw(2, 0), false},
		{raw(0, 2), false},
		{raw(2, 4), false},
		{raw(3, -4), false},
		{Fraction[int64]{}, false},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d", idx, tc.r.num, tc.r.den), func(t *testing.T) {
			require.Equal(t, tc.valid, tc.r.IsValid())
		})
	}
}

func TestPredicates(t *testing.T) {
	require.True(t, Undefined[int64]().IsUndefined())
	require.False(t, Undefined[int64]().IsZero())
	require.True(t, Zero[int64]().IsZero())
	require.True(t, New[int64](4, 2).IsInt())
	require.False(t, New[int64](1, 2).IsInt())

	require.Equal(t, -1, New[int64](-1, 2).Sign())
	require.Equal(t, 0, Zero[int64]().Sign())
	require.Equal(t, 1, New[int64](1, 2).Sign())
	require.Equal(t, 1, Undefined[int64]().Sign())
}

func TestLimits(t *testing.T) {
	require.Equal(t, int8(math.MaxInt8), maxValue[int8]())
	require.Equal(t, int8(math.MinInt8), minValue[int8]())
	require.Equal(t, int16(math.MaxInt16), maxValue[int16]())
	require.Equal(t, int32(math.MaxInt32), maxValue[int32]())
	require.Equal(t, int64(math.MaxInt64), maxValue[int64]())
	require.Equal(t, int64(math.MinInt64), minValue[int64]())
	require.Equal(t, float64(1<<31), rangeLimit[int32]())
	require.Equal(t, 32, bitSize[float32]())
}
