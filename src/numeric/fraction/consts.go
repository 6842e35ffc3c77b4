package fraction

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the numeric domain of a Fraction. Normalization moves the sign
// onto the numerator, so only signed integers qualify.
type Integer = constraints.Signed

// Float is the domain accepted by FromFloat.
type Float = constraints.Float

const (
	// DefaultThreshold is the largest number of fractional digits String will
	// print as a plain decimal before falling back to num/den.
	DefaultThreshold = 2
)

// bitSize returns the width of T in bits.
func bitSize[T Integer | Float]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

func maxValue[T Integer]() T {
	// 1<<(n-1) wraps to the minimum, and the minimum minus one wraps back
	return T(1)<<(bitSize[T]()-1) - 1
}

func minValue[T Integer]() T {
	return -maxValue[T]() - 1
}

// rangeLimit is 2**(n-1) for the width of T, which is exactly representable
// as a float64 for every width. Valid scaled values lie in [-limit, limit).
func rangeLimit[T Integer]() float64 {
	return math.Ldexp(1, bitSize[T]()-1)
}
