package numeric

import (
	"math"
	"math/big"

	"github.com/gitrdm/lispcore/pkg/value"
)

// unary wraps a math.XxxFn(float64) float64 as a Value->Value function:
// every auxiliary math function coerces its operand to float64 first
// and always returns a Float, regardless of the operand's own category.
func unary(fn func(float64) float64) func(value.Value) (value.Value, error) {
	return func(a value.Value) (value.Value, error) {
		if _, err := requireNumeric(a, 0); err != nil {
			return nil, err
		}
		return value.Float(fn(asFloat(a))), nil
	}
}

var (
	Sqrt  = unary(math.Sqrt)
	Cbrt  = unary(math.Cbrt)
	Sin   = unary(math.Sin)
	Cos   = unary(math.Cos)
	Tan   = unary(math.Tan)
	ASin  = unary(math.Asin)
	ACos  = unary(math.Acos)
	ATan  = unary(math.Atan)
	Sinh  = unary(math.Sinh)
	Cosh  = unary(math.Cosh)
	Tanh  = unary(math.Tanh)
	Exp   = unary(math.Exp)
	Log   = unary(math.Log)
	Log10 = unary(math.Log10)
	Ceil  = unary(math.Ceil)
	Floor = unary(math.Floor)
	Rint  = unary(math.RoundToEven)

	ToRadians = unary(func(deg float64) float64 { return deg * math.Pi / 180 })
	ToDegrees = unary(func(rad float64) float64 { return rad * 180 / math.Pi })
)

// Pow and ATan2 take two operands; both coerce to float per the same
// contract unary functions follow.
func Pow(a, b value.Value) (value.Value, error) {
	if _, err := requireNumeric(a, 0); err != nil {
		return nil, err
	}
	if _, err := requireNumeric(b, 1); err != nil {
		return nil, err
	}
	return value.Float(math.Pow(asFloat(a), asFloat(b))), nil
}

func ATan2(y, x value.Value) (value.Value, error) {
	if _, err := requireNumeric(y, 0); err != nil {
		return nil, err
	}
	if _, err := requireNumeric(x, 1); err != nil {
		return nil, err
	}
	return value.Float(math.Atan2(asFloat(y), asFloat(x))), nil
}

// Abs returns |a|, preserving a's category (unlike the trig/exp family,
// Clojure's abs is exact for exact inputs).
func Abs(a value.Value) (value.Value, error) {
	c, err := requireNumeric(a, 0)
	if err != nil {
		return nil, err
	}
	switch c {
	case catInt:
		n := int64(a.(value.Integer))
		if n == math.MinInt64 {
			return value.BigInt{V: new(big.Int).Abs(big.NewInt(n))}, nil
		}
		if n < 0 {
			n = -n
		}
		return value.Integer(n), nil
	case catFloat:
		return value.Float(math.Abs(float64(a.(value.Float)))), nil
	case catBigInt:
		bi, _ := value.AsBigInt(a)
		return value.NormalizeBigInt(new(big.Int).Abs(bi)), nil
	case catRatio:
		r := a.(value.Ratio)
		return value.NewRatio(new(big.Int).Abs(r.Num), r.Den), nil
	case catBigDecimal:
		d := a.(value.BigDecimal)
		return value.NewBigDecimal(new(big.Int).Abs(d.Unscaled), d.Scale), nil
	}
	return nil, value.NewInternalError("Abs: unreachable")
}

// Signum returns -1, 0, or 1: an Integer for an exact operand, a Float
// (-1.0, 0.0, 1.0, or NaN for a NaN operand) for a Float operand.
func Signum(a value.Value) (value.Value, error) {
	c, err := requireNumeric(a, 0)
	if err != nil {
		return nil, err
	}
	if c == catFloat {
		f := float64(a.(value.Float))
		switch {
		case math.IsNaN(f):
			return value.Float(math.NaN()), nil
		case f > 0:
			return value.Float(1), nil
		case f < 0:
			return value.Float(-1), nil
		default:
			return value.Float(0), nil
		}
	}
	r, _ := value.AsBigRat(a)
	return value.Integer(int64(r.Sign())), nil
}

// Round implements Clojure's `round`: half-up for .5 boundary on
// positive and negative alike (matching java.lang.Math.round, which
// Clojure delegates to), returned as an Integer.
func Round(a value.Value) (value.Value, error) {
	if _, err := requireNumeric(a, 0); err != nil {
		return nil, err
	}
	f := asFloat(a)
	return value.Integer(int64(math.Floor(f + 0.5))), nil
}

// requireIntegral rejects Float/Ratio/BigDecimal operands for the
// exact-* family, which only accepts integral Values.
func requireIntegral(v value.Value, pos int) (*big.Int, error) {
	bi, ok := value.AsBigInt(v)
	if !ok {
		return nil, value.NewTypeErrorAt(pos, "Cannot cast %s to integer", tagOf(v))
	}
	return bi, nil
}

var int64Min = big.NewInt(math.MinInt64)
var int64Max = big.NewInt(math.MaxInt64)

func exactInt64(bi *big.Int, op string) (value.Value, error) {
	if bi.Cmp(int64Min) < 0 || bi.Cmp(int64Max) > 0 {
		return nil, value.NewArithmeticError("integer overflow in %s", op)
	}
	return value.Integer(bi.Int64()), nil
}

// AddExact, SubExact, MulExact, NegateExact implement the exact-*
// family: integral-only arithmetic that raises ArithmeticError on
// overflow of the compact integer range instead of promoting.
func AddExact(a, b value.Value) (value.Value, error) {
	ba, err := requireIntegral(a, 0)
	if err != nil {
		return nil, err
	}
	bb, err := requireIntegral(b, 1)
	if err != nil {
		return nil, err
	}
	return exactInt64(new(big.Int).Add(ba, bb), "add")
}

func SubExact(a, b value.Value) (value.Value, error) {
	ba, err := requireIntegral(a, 0)
	if err != nil {
		return nil, err
	}
	bb, err := requireIntegral(b, 1)
	if err != nil {
		return nil, err
	}
	return exactInt64(new(big.Int).Sub(ba, bb), "subtract")
}

func MulExact(a, b value.Value) (value.Value, error) {
	ba, err := requireIntegral(a, 0)
	if err != nil {
		return nil, err
	}
	bb, err := requireIntegral(b, 1)
	if err != nil {
		return nil, err
	}
	return exactInt64(new(big.Int).Mul(ba, bb), "multiply")
}

func NegateExact(a value.Value) (value.Value, error) {
	ba, err := requireIntegral(a, 0)
	if err != nil {
		return nil, err
	}
	return exactInt64(new(big.Int).Neg(ba), "negate")
}

func IncrementExact(a value.Value) (value.Value, error) { return AddExact(a, value.Integer(1)) }
func DecrementExact(a value.Value) (value.Value, error) { return SubExact(a, value.Integer(1)) }
