package fraction

import (
	"github.com/pkg/errors"
)

// Failures of the fallible operations. Arithmetic division by zero is not an
// error, it produces the undefined value (see Undefined).
var (
	// ErrNotFinite is returned when converting NaN or an infinity.
	ErrNotFinite = errors.New("fraction: value is not finite")

	// ErrPrecision is returned when the decimal expansion of a float has
	// more digits than the integer domain can scale by.
	ErrPrecision = errors.New("fraction: too many decimal digits")

	// ErrOutOfRange is returned when a scaled float does not fit the integer
	// domain.
	ErrOutOfRange = errors.New("fraction: value out of range")

	// ErrOverflow is returned by the checked operations.
	ErrOverflow = errors.New("fraction: arithmetic overflow")

	// ErrLiteral is returned by FromLiteral.
	ErrLiteral = errors.New("fraction: invalid literal")
)

func overflowf[T Integer](op string, x, y Fraction[T]) error {
	return errors.Wrapf(ErrOverflow, "%s %s/%s, %s/%s (%d bit)",
		op, itoa(x.num), itoa(x.den), itoa(y.num), itoa(y.den), bitSize[T]())
}
