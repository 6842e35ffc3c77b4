package fraction

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FromLiteral builds a fraction from "n" or "n/d", where n and d are base 10
// integer literals that fit in T. It is shorthand for FromInt(n) and Fr(n, d)
// and accepts nothing else: no spaces, decimals or nesting.
func FromLiteral[T Integer](s string) (Fraction[T], error) {
	numText, denText, hasDen := strings.Cut(s, "/")
	num, err := parseInt[T](numText)
	if err != nil {
		return Fraction[T]{}, errors.Wrapf(ErrLiteral, "%q: numerator: %v", s, err)
	}
	if !hasDen {
		return FromInt(num), nil
	}
	den, err := parseInt[T](denText)
	if err != nil {
		return Fraction[T]{}, errors.Wrapf(ErrLiteral, "%q: denominator: %v", s, err)
	}
	return Fr(num, den), nil
}

func parseInt[T Integer](s string) (T, error) {
	v, err := strconv.ParseInt(s, 10, bitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(v), nil
}
