package numeric

import "golang.org/x/exp/constraints"

// maxOrdered returns the larger of a and b for any ordered scalar,
// used by the decimal scale bookkeeping that picks the wider of two
// operands' int32 scales rather than re-deriving a type-specific max.
func maxOrdered[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
