package numeric

import (
	"math"
	"math/big"

	"github.com/gitrdm/lispcore/pkg/value"
)

// usesFloatPath reports whether mod/rem must coerce to float: any float
// operand does, and so does any rational/big_decimal operand (both
// coerce to float rather than gaining an exact mod/rem path).
func usesFloatPath(ca, cb category) bool {
	return ca == catFloat || cb == catFloat || ca == catRatio || cb == catRatio ||
		ca == catBigDecimal || cb == catBigDecimal
}

// Mod implements `mod`: floors toward negative infinity.
func Mod(a, b value.Value) (value.Value, error) {
	ca, err := requireNumeric(a, 0)
	if err != nil {
		return nil, err
	}
	cb, err := requireNumeric(b, 1)
	if err != nil {
		return nil, err
	}

	if usesFloatPath(ca, cb) {
		fa, fb := asFloat(a), asFloat(b)
		if fb == 0 {
			return nil, value.DivideByZero()
		}
		m := math.Mod(fa, fb)
		if m != 0 && (m < 0) != (fb < 0) {
			m += fb
		}
		return value.Float(m), nil
	}

	ba, _ := value.AsBigInt(a)
	bb, _ := value.AsBigInt(b)
	if bb.Sign() == 0 {
		return nil, value.DivideByZero()
	}
	_, r := floorQuoRem(ba, bb)
	return value.NormalizeBigInt(r), nil
}

// Rem implements `rem`: truncates toward zero. The big-int path uses
// (*big.Int).Rem directly — Go's big.Int.Rem is already a truncated
// (T-division) remainder, so the quotient never leaks into the
// remainder slot.
func Rem(a, b value.Value) (value.Value, error) {
	ca, err := requireNumeric(a, 0)
	if err != nil {
		return nil, err
	}
	cb, err := requireNumeric(b, 1)
	if err != nil {
		return nil, err
	}

	if usesFloatPath(ca, cb) {
		fa, fb := asFloat(a), asFloat(b)
		if fb == 0 {
			return nil, value.DivideByZero()
		}
		return value.Float(math.Mod(fa, fb)), nil
	}

	ba, _ := value.AsBigInt(a)
	bb, _ := value.AsBigInt(b)
	if bb.Sign() == 0 {
		return nil, value.DivideByZero()
	}
	r := new(big.Int).Rem(ba, bb)
	return value.NormalizeBigInt(r), nil
}

// floorQuoRem returns (q, r) such that a = b*q + r, 0 <= sign(r) tracks
// b's sign (i.e. floor division), matching Java's Math.floorDiv /
// Math.floorMod.
func floorQuoRem(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

// FloorDiv implements `math/floor-div`.
func FloorDiv(a, b value.Value) (value.Value, error) {
	ba, okA := value.AsBigInt(a)
	bb, okB := value.AsBigInt(b)
	if !okA {
		return nil, value.NewTypeErrorAt(0, "Cannot cast %s to integer", tagOf(a))
	}
	if !okB {
		return nil, value.NewTypeErrorAt(1, "Cannot cast %s to integer", tagOf(b))
	}
	if bb.Sign() == 0 {
		return nil, value.DivideByZero()
	}
	q, _ := floorQuoRem(ba, bb)
	return value.NormalizeBigInt(q), nil
}

// FloorMod implements `math/floor-mod` (an alias of Mod restricted to
// integral operands, matching Java's Math.floorMod contract).
func FloorMod(a, b value.Value) (value.Value, error) {
	ba, okA := value.AsBigInt(a)
	bb, okB := value.AsBigInt(b)
	if !okA {
		return nil, value.NewTypeErrorAt(0, "Cannot cast %s to integer", tagOf(a))
	}
	if !okB {
		return nil, value.NewTypeErrorAt(1, "Cannot cast %s to integer", tagOf(b))
	}
	if bb.Sign() == 0 {
		return nil, value.DivideByZero()
	}
	_, r := floorQuoRem(ba, bb)
	return value.NormalizeBigInt(r), nil
}

func tagOf(v value.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Tag().String()
}
