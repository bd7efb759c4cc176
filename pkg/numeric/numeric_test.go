package numeric

import (
	"math"
	"math/big"
	"testing"

	"github.com/gitrdm/lispcore/pkg/value"
)

func mustValue(t *testing.T, v value.Value, err error) value.Value {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestPromotingOverflowToBigInt(t *testing.T) {
	got := mustValue(t, MulPromoting(value.Integer(10000000000), value.Integer(10000000000)))
	bi, ok := got.(value.BigInt)
	if !ok {
		t.Fatalf("expected BigInt, got %T", got)
	}
	if bi.V.String() != "100000000000000000000" {
		t.Fatalf("expected 1e20, got %s", bi.V.String())
	}
}

func TestNonPromotingOverflowToFloat(t *testing.T) {
	got := mustValue(t, Mul(value.Integer(math.MaxInt64), value.Integer(2)))
	if _, ok := got.(value.Float); !ok {
		t.Fatalf("expected Float on non-promoting overflow, got %T", got)
	}
}

func TestDivReducesToInteger(t *testing.T) {
	got := mustValue(t, Div(value.Integer(10), value.Integer(5)))
	if got != value.Value(value.Integer(2)) {
		t.Fatalf("expected 2, got %v (%T)", got, got)
	}
}

func TestDivStaysRatio(t *testing.T) {
	got := mustValue(t, Div(value.Integer(10), value.Integer(3)))
	r, ok := got.(value.Ratio)
	if !ok {
		t.Fatalf("expected Ratio, got %T", got)
	}
	if r.Num.Int64() != 10 || r.Den.Int64() != 3 {
		t.Fatalf("expected 10/3, got %s/%s", r.Num, r.Den)
	}
}

func TestAddHalvesToInteger(t *testing.T) {
	half := value.NewRatio(big.NewInt(1), big.NewInt(2))
	got := mustValue(t, Add(half, half))
	if got != value.Value(value.Integer(1)) {
		t.Fatalf("expected 1, got %v (%T)", got, got)
	}
}

func TestModFloorsTowardNegativeInfinity(t *testing.T) {
	got := mustValue(t, Mod(value.Integer(-7), value.Integer(3)))
	if got != value.Value(value.Integer(2)) {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestRemTruncatesTowardZero(t *testing.T) {
	got := mustValue(t, Rem(value.Integer(-7), value.Integer(3)))
	if got != value.Value(value.Integer(-1)) {
		t.Fatalf("expected -1, got %v", got)
	}
}

func TestDivideByZeroIsArithmeticError(t *testing.T) {
	_, err := Div(value.Integer(1), value.Integer(0))
	if _, ok := err.(*value.ArithmeticError); !ok {
		t.Fatalf("expected ArithmeticError, got %v (%T)", err, err)
	}
}

func TestFloatDivideByZeroIsArithmeticErrorNotInf(t *testing.T) {
	_, err := Div(value.Integer(1), value.Float(0))
	if _, ok := err.(*value.ArithmeticError); !ok {
		t.Fatalf("expected ArithmeticError for float/0, got %v (%T)", err, err)
	}
}

func TestNaNComparisonsAreFalse(t *testing.T) {
	nan := value.Float(math.NaN())
	one := value.Integer(1)
	for _, rel := range []func(a, b value.Value) (bool, error){Lt, Le, Gt, Ge} {
		ok, err := rel(nan, one)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatalf("expected NaN ordered comparison to be false")
		}
	}
}

func TestExactAddOverflows(t *testing.T) {
	_, err := AddExact(value.Integer(math.MaxInt64), value.Integer(1))
	if _, ok := err.(*value.ArithmeticError); !ok {
		t.Fatalf("expected ArithmeticError, got %v", err)
	}
}

func TestTypeErrorOnNonNumeric(t *testing.T) {
	_, err := Add(value.String("x"), value.Integer(1))
	te, ok := err.(*value.TypeError)
	if !ok {
		t.Fatalf("expected TypeError, got %T", err)
	}
	if te.ArgPos != 0 {
		t.Fatalf("expected arg pos 0, got %d", te.ArgPos)
	}
}
