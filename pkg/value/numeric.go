package value

import (
	"math/big"
)

// Integer is the compact fixed-width integer category. Go's int64 gives
// at least 48 bits with headroom to spare, and matches Clojure's own
// Long representation closely enough that overflow/promotion rules
// translate directly.
type Integer int64

func (Integer) Tag() Tag { return TagInteger }

// Float is the IEEE-754 double category.
type Float float64

func (Float) Tag() Tag { return TagFloat }

// BigInt is the arbitrary-precision integer category. NewBigInt
// guarantees a non-nil V; it does not demote values that fit in an
// Integer.
type BigInt struct {
	V *big.Int
}

func (BigInt) Tag() Tag { return TagBigInt }

// NewBigInt wraps i. The caller must not mutate i afterwards; clone
// first if you intend to keep modifying the source.
func NewBigInt(i *big.Int) BigInt {
	if i == nil {
		i = new(big.Int)
	}
	return BigInt{V: i}
}

// BigDecimal is the (unscaled, scale) pair denoting unscaled * 10^(-scale).
// The invariant from the data model is Scale >= 0.
type BigDecimal struct {
	Unscaled *big.Int
	Scale    int32
}

func (BigDecimal) Tag() Tag { return TagBigDecimal }

// NewBigDecimal normalizes scale to be non-negative: a negative scale
// (an "unscaled" value meant to be multiplied by a positive power of
// ten) is folded into the unscaled component so the stored invariant
// always holds.
func NewBigDecimal(unscaled *big.Int, scale int32) BigDecimal {
	if unscaled == nil {
		unscaled = new(big.Int)
	}
	if scale < 0 {
		shifted := new(big.Int).Set(unscaled)
		shifted.Mul(shifted, pow10(-int(scale)))
		return BigDecimal{Unscaled: shifted, Scale: 0}
	}
	return BigDecimal{Unscaled: unscaled, Scale: scale}
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Ratio is the exact-rational category. Construction always happens
// through NewRatio, which reduces to lowest terms, forces a positive
// denominator, and — per the invariant that a Ratio must never hold an
// integer value — returns a plain Integer/BigInt Value instead of a
// Ratio when the reduced denominator is 1.
type Ratio struct {
	Num *big.Int
	Den *big.Int
}

func (Ratio) Tag() Tag { return TagRatio }

// NewRatio reduces num/den and returns either a Ratio, an Integer (if
// the reduced value fits the compact range), or a BigInt (otherwise).
// Panics if den is zero — callers in pkg/numeric must check for a zero
// denominator first and raise an ArithmeticError instead.
func NewRatio(num, den *big.Int) Value {
	if den.Sign() == 0 {
		panic("value: NewRatio: zero denominator")
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), new(big.Int).Abs(d))
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	if d.Cmp(big.NewInt(1)) == 0 {
		return NormalizeBigInt(n)
	}
	return Ratio{Num: n, Den: d}
}

// NormalizeBigInt returns an Integer if i fits an int64, else a BigInt.
// Every integer-producing path in the numeric tower funnels its result
// through this so compact values never get stuck boxed as BigInt.
func NormalizeBigInt(i *big.Int) Value {
	if i.IsInt64() {
		return Integer(i.Int64())
	}
	return BigInt{V: i}
}

// AsBigInt widens any integral Value (Integer or BigInt) to *big.Int.
// It does not accept Float/Ratio/BigDecimal — callers needing those
// coerced go through pkg/numeric's promotion helpers instead.
func AsBigInt(v Value) (*big.Int, bool) {
	switch t := v.(type) {
	case Integer:
		return big.NewInt(int64(t)), true
	case BigInt:
		return t.V, true
	default:
		return nil, false
	}
}

// AsBigRat widens any exact numeric Value (Integer, BigInt, Ratio, or
// BigDecimal) to *big.Rat. Float is intentionally excluded: converting
// a float to exact-rational would silently misrepresent the rule that
// any float involvement forces float arithmetic.
func AsBigRat(v Value) (*big.Rat, bool) {
	switch t := v.(type) {
	case Integer:
		return new(big.Rat).SetInt64(int64(t)), true
	case BigInt:
		return new(big.Rat).SetInt(t.V), true
	case Ratio:
		return new(big.Rat).SetFrac(t.Num, t.Den), true
	case BigDecimal:
		den := pow10(int(t.Scale))
		return new(big.Rat).SetFrac(t.Unscaled, den), true
	default:
		return nil, false
	}
}
