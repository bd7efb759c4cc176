package numeric

import (
	"math/big"

	"github.com/gitrdm/lispcore/pkg/value"
)

type intBinOp func(a, b int64) *big.Int
type bigBinOp func(a, b *big.Int) *big.Int
type ratBinOp func(a, b *big.Rat) *big.Rat
type floatBinOp func(a, b float64) float64

func intAdd(a, b int64) *big.Int { return new(big.Int).Add(big.NewInt(a), big.NewInt(b)) }
func intSub(a, b int64) *big.Int { return new(big.Int).Sub(big.NewInt(a), big.NewInt(b)) }
func intMul(a, b int64) *big.Int { return new(big.Int).Mul(big.NewInt(a), big.NewInt(b)) }

func ratAdd(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func ratSub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func ratMul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func bigAdd(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func bigSub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func bigMul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func floatAdd(a, b float64) float64 { return a + b }
func floatSub(a, b float64) float64 { return a - b }
func floatMul(a, b float64) float64 { return a * b }

// arith dispatches a/sub/mul by promotion category. decScale, when the
// result category is BigDecimal, picks the scale add/sub hold the
// operands to (matching scales then combining unscaled integers) or the
// scale mul derives (sum of operand scales, the BigDecimal invariant).
func arith(a, b value.Value, promoting bool, iop intBinOp, rop ratBinOp, bop bigBinOp, fop floatBinOp, isMul bool) (value.Value, error) {
	ca, err := requireNumeric(a, 0)
	if err != nil {
		return nil, err
	}
	cb, err := requireNumeric(b, 1)
	if err != nil {
		return nil, err
	}

	switch resultMatrix[ca][cb] {
	case catInt:
		ai, bi := int64(a.(value.Integer)), int64(b.(value.Integer))
		sum := iop(ai, bi)
		if sum.IsInt64() {
			return value.Integer(sum.Int64()), nil
		}
		if promoting {
			return value.BigInt{V: sum}, nil
		}
		// Non-promoting overflow falls back to float.
		return value.Float(fop(float64(ai), float64(bi))), nil

	case catFloat:
		return value.Float(fop(asFloat(a), asFloat(b))), nil

	case catBigInt:
		ba, _ := value.AsBigInt(a)
		bb, _ := value.AsBigInt(b)
		return value.NormalizeBigInt(bop(ba, bb)), nil

	case catRatio:
		ra, _ := value.AsBigRat(a)
		rb, _ := value.AsBigRat(b)
		res := rop(ra, rb)
		return value.NewRatio(res.Num(), res.Denom()), nil

	case catBigDecimal:
		return decimalArith(a, b, bop, isMul), nil
	}
	return nil, value.NewInternalError("arith: unreachable promotion result")
}

func decimalArith(a, b value.Value, bop bigBinOp, isMul bool) value.Value {
	if isMul {
		da := toBigDecimalNoRescale(a)
		db := toBigDecimalNoRescale(b)
		unscaled := bop(da.Unscaled, db.Unscaled)
		return value.NewBigDecimal(unscaled, da.Scale+db.Scale)
	}
	scale := decimalTargetScale(a, b)
	da := toBigDecimal(a, scale)
	db := toBigDecimal(b, scale)
	return value.NewBigDecimal(bop(da.Unscaled, db.Unscaled), scale)
}

// toBigDecimalNoRescale widens a non-decimal operand to a BigDecimal at
// scale 0 (an exact integer) so multiplication can add scales per the
// BigDecimal invariant; an already-BigDecimal operand passes through
// unchanged (its own scale contributes to the product's scale).
func toBigDecimalNoRescale(v value.Value) value.BigDecimal {
	if d, ok := v.(value.BigDecimal); ok {
		return d
	}
	switch t := v.(type) {
	case value.Integer:
		return value.NewBigDecimal(big.NewInt(int64(t)), 0)
	case value.BigInt:
		return value.NewBigDecimal(new(big.Int).Set(t.V), 0)
	case value.Ratio:
		// Multiplying a BigDecimal by an inexact ratio still needs a
		// concrete scale to anchor the unscaled product; use the same
		// default as the add/sub path.
		rat := new(big.Rat).SetFrac(t.Num, t.Den)
		return value.NewBigDecimal(ratioToScaledBigInt(rat, defaultDecimalScale), defaultDecimalScale)
	}
	return value.NewBigDecimal(big.NewInt(0), 0)
}

// Add implements non-promoting `+`.
func Add(a, b value.Value) (value.Value, error) {
	return arith(a, b, false, intAdd, ratAdd, bigAdd, floatAdd, false)
}

// AddPromoting implements `+'`.
func AddPromoting(a, b value.Value) (value.Value, error) {
	return arith(a, b, true, intAdd, ratAdd, bigAdd, floatAdd, false)
}

// Sub implements non-promoting `-`.
func Sub(a, b value.Value) (value.Value, error) {
	return arith(a, b, false, intSub, ratSub, bigSub, floatSub, false)
}

// SubPromoting implements `-'`.
func SubPromoting(a, b value.Value) (value.Value, error) {
	return arith(a, b, true, intSub, ratSub, bigSub, floatSub, false)
}

// Mul implements non-promoting `*`.
func Mul(a, b value.Value) (value.Value, error) {
	return arith(a, b, false, intMul, ratMul, bigMul, floatMul, true)
}

// MulPromoting implements `*'`.
func MulPromoting(a, b value.Value) (value.Value, error) {
	return arith(a, b, true, intMul, ratMul, bigMul, floatMul, true)
}

// Neg implements unary negation across the whole tower.
func Neg(a value.Value) (value.Value, error) {
	ca, err := requireNumeric(a, 0)
	if err != nil {
		return nil, err
	}
	switch ca {
	case catInt:
		n := int64(a.(value.Integer))
		if n == -n && n != 0 { // math.MinInt64 negation overflow
			return value.BigInt{V: new(big.Int).Neg(big.NewInt(n))}, nil
		}
		return value.Integer(-n), nil
	case catFloat:
		return value.Float(-float64(a.(value.Float))), nil
	case catBigInt:
		bi, _ := value.AsBigInt(a)
		return value.NormalizeBigInt(new(big.Int).Neg(bi)), nil
	case catRatio:
		r := a.(value.Ratio)
		return value.NewRatio(new(big.Int).Neg(r.Num), r.Den), nil
	case catBigDecimal:
		d := a.(value.BigDecimal)
		return value.NewBigDecimal(new(big.Int).Neg(d.Unscaled), d.Scale), nil
	}
	return nil, value.NewInternalError("Neg: unreachable")
}

// Div implements `/`: integer/integer reduces to an exact ratio (or
// integer); any float operand forces float division with a
// divide-by-zero ArithmeticError instead of ±Inf; a BigDecimal operand
// (with no float present) falls back to float division to sidestep
// non-terminating decimal expansions.
func Div(a, b value.Value) (value.Value, error) {
	ca, err := requireNumeric(a, 0)
	if err != nil {
		return nil, err
	}
	cb, err := requireNumeric(b, 1)
	if err != nil {
		return nil, err
	}

	if ca == catFloat || cb == catFloat {
		fb := asFloat(b)
		if fb == 0 {
			return nil, value.DivideByZero()
		}
		return value.Float(asFloat(a) / fb), nil
	}

	if ca == catBigDecimal || cb == catBigDecimal {
		fb := asFloat(b)
		if fb == 0 {
			return nil, value.DivideByZero()
		}
		return value.Float(asFloat(a) / fb), nil
	}

	// Exact path: integer, big_int, ratio only.
	rb, _ := value.AsBigRat(b)
	if rb.Sign() == 0 {
		return nil, value.DivideByZero()
	}
	ra, _ := value.AsBigRat(a)
	res := new(big.Rat).Quo(ra, rb)
	return value.NewRatio(res.Num(), res.Denom()), nil
}
