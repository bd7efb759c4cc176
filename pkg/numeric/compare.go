package numeric

import (
	"math"

	"github.com/gitrdm/lispcore/pkg/value"
)

// Compare returns -1, 0, or 1 per the usual three-way contract.
// Ratio-vs-ratio cross-multiplies (denominators are always positive so
// the cross product's sign alone decides order without any
// floating-point loss), big_int orders by magnitude, and any float
// operand forces a float comparison. NaN is never equal, less than, or
// greater than anything — callers needing that must check IsNaN
// themselves; Compare on a NaN operand returns 0 only coincidentally
// and should not be relied on for ordering.
func Compare(a, b value.Value) (int, error) {
	ca, err := requireNumeric(a, 0)
	if err != nil {
		return 0, err
	}
	cb, err := requireNumeric(b, 1)
	if err != nil {
		return 0, err
	}

	if ca == catFloat || cb == catFloat {
		fa, fb := asFloat(a), asFloat(b)
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		default:
			return 0, nil
		}
	}

	ra, _ := value.AsBigRat(a)
	rb, _ := value.AsBigRat(b)
	return ra.Cmp(rb), nil
}

// isNaN reports whether v is a float NaN; comparisons involving NaN
// must report false for every ordered relation.
func isNaN(v value.Value) bool {
	f, ok := v.(value.Float)
	return ok && math.IsNaN(float64(f))
}

func ordered(a, b value.Value, rel func(c int) bool) (bool, error) {
	if isNaN(a) || isNaN(b) {
		return false, nil
	}
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return rel(c), nil
}

func Lt(a, b value.Value) (bool, error) { return ordered(a, b, func(c int) bool { return c < 0 }) }
func Le(a, b value.Value) (bool, error) { return ordered(a, b, func(c int) bool { return c <= 0 }) }
func Gt(a, b value.Value) (bool, error) { return ordered(a, b, func(c int) bool { return c > 0 }) }
func Ge(a, b value.Value) (bool, error) { return ordered(a, b, func(c int) bool { return c >= 0 }) }
