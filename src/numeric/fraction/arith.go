package fraction

// syncBase rewrites x and y over the common denominator x.den*y.den, which is
// not necessarily the least one. Only the two numerators and the shared
// denominator are returned.
func syncBase[T Integer](x, y Fraction[T]) (xn, yn, den T) {
	return x.num * y.den, y.num * x.den, x.den * y.den
}

// Add returns x+y. The products may wrap for large operands; see CheckedAdd.
func (x Fraction[T]) Add(y Fraction[T]) Fraction[T] {
	xn, yn, den := syncBase(x, y)
	return New(xn+yn, den)
}

// Sub returns x-y.
func (x Fraction[T]) Sub(y Fraction[T]) Fraction[T] {
	xn, yn, den := syncBase(x, y)
	return New(xn-yn, den)
}

// Mul returns x*y.
func (x Fraction[T]) Mul(y Fraction[T]) Fraction[T] {
	return New(x.num*y.num, x.den*y.den)
}

// Div returns x/y, or the undefined value if y is zero or either operand is
// undefined.
func (x Fraction[T]) Div(y Fraction[T]) Fraction[T] {
	if x.den == 0 || y.den == 0 {
		return Undefined[T]()
	}
	return New(x.num*y.den, x.den*y.num)
}

// Rem returns the remainder of the synced numerators over the synced
// denominator, (x.num*y.den mod y.num*x.den) / (x.den*y.den). The sign
// follows x, like Go's % operator. A zero y gives the undefined value.
func (x Fraction[T]) Rem(y Fraction[T]) Fraction[T] {
	xn, yn, den := syncBase(x, y)
	if yn == 0 {
		return Undefined[T]()
	}
	return New(xn%yn, den)
}

func (x Fraction[T]) AddInt(v T) Fraction[T] { return x.Add(FromInt(v)) }
func (x Fraction[T]) SubInt(v T) Fraction[T] { return x.Sub(FromInt(v)) }
func (x Fraction[T]) MulInt(v T) Fraction[T] { return x.Mul(FromInt(v)) }
func (x Fraction[T]) DivInt(v T) Fraction[T] { return x.Div(FromInt(v)) }

// Neg returns -x. The undefined value is returned unchanged.
func (x Fraction[T]) Neg() Fraction[T] {
	if x.den == 0 {
		return x
	}
	return Fraction[T]{num: -x.num, den: x.den}
}

// Abs returns |x|.
func (x Fraction[T]) Abs() Fraction[T] {
	if x.num < 0 {
		return x.Neg()
	}
	return x
}

// Inv returns 1/x. The inverse of zero is undefined, and the inverse of the
// undefined value is zero.
func (x Fraction[T]) Inv() Fraction[T] {
	return New(x.den, x.num)
}
