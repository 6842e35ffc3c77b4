package fraction

// Equal reports whether x and y hold the same value. Canonical form makes
// this a field comparison.
func (x Fraction[T]) Equal(y Fraction[T]) bool {
	return x.num == y.num && x.den == y.den
}

// Cmp compares the values of x and y, returning -1, 0 or +1. The undefined
// value is greater than every other value and equal to itself.
//
// The numerators are compared over the synced base, x.num*y.den against
// y.num*x.den. This only orders by value because canonical denominators are
// never negative; multiplying through by a negative denominator would flip
// the result. Products that do not fit in T are compared with math/big.
func (x Fraction[T]) Cmp(y Fraction[T]) int {
	if x.Equal(y) {
		return 0
	}
	switch {
	case x.den == 0:
		return 1
	case y.den == 0:
		return -1
	}
	xn, ok1 := mulOK(x.num, y.den)
	yn, ok2 := mulOK(y.num, x.den)
	if !ok1 || !ok2 {
		return x.Rat().Cmp(y.Rat())
	}
	switch {
	case xn < yn:
		return -1
	case xn > yn:
		return 1
	default:
		return 0
	}
}

// Less reports whether x < y by value.
func (x Fraction[T]) Less(y Fraction[T]) bool {
	return x.Cmp(y) < 0
}

// CmpFields orders x and y by numerator, then denominator. It is a total
// order for sorting and deduplication, but it is not value order: 1/2 sorts
// before 1/3. Use Cmp for that.
func (x Fraction[T]) CmpFields(y Fraction[T]) int {
	switch {
	case x.num < y.num:
		return -1
	case x.num > y.num:
		return 1
	case x.den < y.den:
		return -1
	case x.den > y.den:
		return 1
	default:
		return 0
	}
}

// Compare is Cmp as a function, for use with slices.SortFunc.
func Compare[T Integer](x, y Fraction[T]) int {
	return x.Cmp(y)
}
