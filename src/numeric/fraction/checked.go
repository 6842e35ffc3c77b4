package fraction

func mulOK[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	// min*-1 wraps to min, and min/-1 wraps too, so the quotient test misses it
	if (a == -1 && b == minValue[T]()) || (b == -1 && a == minValue[T]()) {
		return c, false
	}
	return c, c/b == a
}

func addOK[T Integer](a, b T) (T, bool) {
	c := a + b
	return c, (b >= 0) == (c >= a)
}

func subOK[T Integer](a, b T) (T, bool) {
	c := a - b
	return c, (b >= 0) == (c <= a)
}

// checkedSync is syncBase with overflow detection.
func checkedSync[T Integer](x, y Fraction[T]) (xn, yn, den T, ok bool) {
	var ok1, ok2, ok3 bool
	xn, ok1 = mulOK(x.num, y.den)
	yn, ok2 = mulOK(y.num, x.den)
	den, ok3 = mulOK(x.den, y.den)
	return xn, yn, den, ok1 && ok2 && ok3
}

// checkedNew is New, failing where normalization would negate the minimum
// of T.
func checkedNew[T Integer](num, den T) (Fraction[T], bool) {
	if den == 0 {
		return Undefined[T](), true
	}
	if num == 0 {
		return Zero[T](), true
	}
	g := gcd(num, den)
	if g == -1 && (num == minValue[T]() || den == minValue[T]()) {
		return Fraction[T]{}, false
	}
	num, den = num/g, den/g
	if den < 0 {
		if num == minValue[T]() || den == minValue[T]() {
			return Fraction[T]{}, false
		}
		num, den = -num, -den
	}
	return Fraction[T]{num: num, den: den}, true
}

// CheckedNew is New, returning ErrOverflow if the canonical form is not
// representable, e.g. math.MinInt64/-1.
func CheckedNew[T Integer](num, den T) (Fraction[T], error) {
	r, ok := checkedNew(num, den)
	if !ok {
		return r, overflowf("new", Fraction[T]{num: num, den: den}, FromInt[T](1))
	}
	return r, nil
}

// CheckedAdd is Add, returning ErrOverflow instead of wrapping.
func (x Fraction[T]) CheckedAdd(y Fraction[T]) (Fraction[T], error) {
	xn, yn, den, ok := checkedSync(x, y)
	var n T
	if ok {
		n, ok = addOK(xn, yn)
	}
	return x.checkedResult("add", y, n, den, ok)
}

// CheckedSub is Sub, returning ErrOverflow instead of wrapping.
func (x Fraction[T]) CheckedSub(y Fraction[T]) (Fraction[T], error) {
	xn, yn, den, ok := checkedSync(x, y)
	var n T
	if ok {
		n, ok = subOK(xn, yn)
	}
	return x.checkedResult("sub", y, n, den, ok)
}

// CheckedMul is Mul, returning ErrOverflow instead of wrapping.
func (x Fraction[T]) CheckedMul(y Fraction[T]) (Fraction[T], error) {
	n, ok1 := mulOK(x.num, y.num)
	d, ok2 := mulOK(x.den, y.den)
	return x.checkedResult("mul", y, n, d, ok1 && ok2)
}

// CheckedDiv is Div, returning ErrOverflow instead of wrapping. Division by
// zero still gives the undefined value, not an error.
func (x Fraction[T]) CheckedDiv(y Fraction[T]) (Fraction[T], error) {
	if x.den == 0 || y.den == 0 {
		return Undefined[T](), nil
	}
	n, ok1 := mulOK(x.num, y.den)
	d, ok2 := mulOK(x.den, y.num)
	return x.checkedResult("div", y, n, d, ok1 && ok2)
}

// CheckedRem is Rem, returning ErrOverflow instead of wrapping.
func (x Fraction[T]) CheckedRem(y Fraction[T]) (Fraction[T], error) {
	xn, yn, den, ok := checkedSync(x, y)
	if !ok {
		return Fraction[T]{}, overflowf("rem", x, y)
	}
	if yn == 0 {
		return Undefined[T](), nil
	}
	return x.checkedResult("rem", y, xn%yn, den, true)
}

func (x Fraction[T]) checkedResult(op string, y Fraction[T], num, den T, ok bool) (Fraction[T], error) {
	if ok {
		var r Fraction[T]
		if r, ok = checkedNew(num, den); ok {
			return r, nil
		}
	}
	return Fraction[T]{}, overflowf(op, x, y)
}
