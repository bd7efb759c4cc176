package numeric

import (
	"math/big"

	"github.com/joeycumines/floater"

	"github.com/gitrdm/lispcore/pkg/value"
)

// defaultDecimalScale is used when a BigDecimal result must absorb a
// Ratio operand that has no finite decimal expansion (e.g. 1/3) and
// neither operand already carries an explicit scale to match. Chosen to
// comfortably exceed float64's ~17 significant decimal digits.
const defaultDecimalScale = int32(34)

func pow10(n int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ratioToScaledBigInt rounds rat to exactly `scale` decimal places,
// half-to-even, and returns the corresponding unscaled integer (i.e.
// round(rat * 10^scale)). It is built on floater.RoundRat, the
// production half-to-even big.Rat rounder this module's domain stack
// wires in specifically for this conversion.
func ratioToScaledBigInt(rat *big.Rat, scale int32) *big.Int {
	rounded := floater.RoundRat(nil, rat, int(scale))
	scaled := new(big.Rat).Mul(rounded, new(big.Rat).SetInt(pow10(scale)))
	// scaled is now an exact integer (rounded was rounded to `scale`
	// places), but stays a *big.Rat; Num()/Denom() recovers the integer
	// since Denom() must be 1 here.
	if !scaled.IsInt() {
		// Should be unreachable given RoundRat's contract; guard with a
		// final truncating division rather than panicking on production
		// numeric paths.
		num := new(big.Int).Quo(scaled.Num(), scaled.Denom())
		return num
	}
	return scaled.Num()
}

// toBigDecimal widens any numeric Value other than Float to a
// BigDecimal at the given scale (used only when at least one operand is
// already a BigDecimal, and the result category per the promotion
// matrix is BigDecimal).
func toBigDecimal(v value.Value, scale int32) value.BigDecimal {
	switch t := v.(type) {
	case value.Integer:
		return value.NewBigDecimal(new(big.Int).Mul(big.NewInt(int64(t)), pow10(scale)), scale)
	case value.BigInt:
		return value.NewBigDecimal(new(big.Int).Mul(t.V, pow10(scale)), scale)
	case value.BigDecimal:
		return rescaleBigDecimal(t, scale)
	case value.Ratio:
		rat := new(big.Rat).SetFrac(t.Num, t.Den)
		return value.NewBigDecimal(ratioToScaledBigInt(rat, scale), scale)
	}
	return value.NewBigDecimal(big.NewInt(0), scale)
}

func rescaleBigDecimal(d value.BigDecimal, scale int32) value.BigDecimal {
	if d.Scale == scale {
		return d
	}
	if scale > d.Scale {
		factor := pow10(scale - d.Scale)
		return value.NewBigDecimal(new(big.Int).Mul(d.Unscaled, factor), scale)
	}
	rat := new(big.Rat).SetFrac(d.Unscaled, pow10(d.Scale))
	return value.NewBigDecimal(ratioToScaledBigInt(rat, scale), scale)
}

// decimalTargetScale picks the scale a BigDecimal result should use when
// combining two operands: the larger of any explicit BigDecimal scales
// present, or defaultDecimalScale if neither operand is already a
// BigDecimal (i.e. a bare Ratio is being forced into decimal form by the
// promotion matrix, which only happens when combined with an existing
// BigDecimal — so in practice one operand's scale is always available).
func decimalTargetScale(a, b value.Value) int32 {
	scale := int32(-1)
	if d, ok := a.(value.BigDecimal); ok {
		scale = d.Scale
	}
	if d, ok := b.(value.BigDecimal); ok {
		scale = maxOrdered(scale, d.Scale)
	}
	if scale < 0 {
		return defaultDecimalScale
	}
	return scale
}
