package fraction

import "strconv"

// gcd is the iterative Euclidean algorithm. The sign of the result follows
// from Go's truncated remainder and may be negative; callers divide by it and
// then fix the sign of the denominator.
func gcd[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func itoa[T Integer](v T) string {
	return strconv.FormatInt(int64(v), 10)
}
