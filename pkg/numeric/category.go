// Package numeric implements the numeric tower: promotion between
// fixed-width integers, floats, arbitrary-precision integers, exact
// rationals, and arbitrary-precision decimals, plus the arithmetic,
// comparison, and auxiliary math operations their promotion matrices
// define.
package numeric

import (
	"math/big"

	"github.com/gitrdm/lispcore/pkg/value"
)

// category is the promotion-matrix row/column index for a numeric
// Value. Matching value.Tag order is not required; only internal
// consistency with the matrix tables in this package is.
type category int

const (
	catInt category = iota
	catFloat
	catBigInt
	catBigDecimal
	catRatio
)

func categoryOf(v value.Value) (category, bool) {
	switch v.(type) {
	case value.Integer:
		return catInt, true
	case value.Float:
		return catFloat, true
	case value.BigInt:
		return catBigInt, true
	case value.BigDecimal:
		return catBigDecimal, true
	case value.Ratio:
		return catRatio, true
	default:
		return 0, false
	}
}

// resultMatrix is the fixed promotion table: given the categories of
// two numeric operands, it names the category add/sub/mul promote
// their result to. It is symmetric because add/sub/mul all share one
// promotion rule regardless of operand order (only the arithmetic
// itself, not its result category, cares about order).
var resultMatrix = [5][5]category{
	catInt:        {catInt, catFloat, catBigInt, catBigDecimal, catRatio},
	catFloat:      {catFloat, catFloat, catFloat, catFloat, catFloat},
	catBigInt:     {catBigInt, catFloat, catBigInt, catBigDecimal, catRatio},
	catBigDecimal: {catBigDecimal, catFloat, catBigDecimal, catBigDecimal, catBigDecimal},
	catRatio:      {catRatio, catFloat, catRatio, catBigDecimal, catRatio},
}

func requireNumeric(v value.Value, pos int) (category, error) {
	c, ok := categoryOf(v)
	if !ok {
		tag := "nil"
		if v != nil {
			tag = v.Tag().String()
		}
		return 0, value.NewTypeErrorAt(pos, "Cannot cast %s to number", tag)
	}
	return c, nil
}

func asFloat(v value.Value) float64 {
	switch t := v.(type) {
	case value.Integer:
		return float64(t)
	case value.Float:
		return float64(t)
	case value.BigInt:
		f := new(big.Float).SetInt(t.V)
		fv, _ := f.Float64()
		return fv
	case value.Ratio:
		r := new(big.Rat).SetFrac(t.Num, t.Den)
		fv, _ := r.Float64()
		return fv
	case value.BigDecimal:
		r, _ := value.AsBigRat(v)
		fv, _ := r.Float64()
		return fv
	}
	return 0
}
