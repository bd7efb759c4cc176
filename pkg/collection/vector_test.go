package collection

import (
	"testing"

	"github.com/gitrdm/lispcore/pkg/value"
)

func TestVectorConjAndNth(t *testing.T) {
	v := EmptyVector
	const n = 200
	for i := 0; i < n; i++ {
		v = v.Conj(value.Integer(i))
	}
	if v.Count() != n {
		t.Fatalf("expected count %d, got %d", n, v.Count())
	}
	for i := 0; i < n; i++ {
		got, ok := v.Nth(i)
		if !ok || got != value.Value(value.Integer(i)) {
			t.Fatalf("Nth(%d) = %v, %v", i, got, ok)
		}
	}
}

func TestVectorStructuralSharing(t *testing.T) {
	v := NewVector(value.Integer(1), value.Integer(2), value.Integer(3))
	v2, err := v.Assoc(1, value.Integer(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := v.Nth(1)
	if got != value.Value(value.Integer(2)) {
		t.Fatalf("original vector mutated: %v", got)
	}
	got2, _ := v2.Nth(1)
	if got2 != value.Value(value.Integer(99)) {
		t.Fatalf("assoc did not apply: %v", got2)
	}
}

func TestVectorPopAcrossLeafBoundary(t *testing.T) {
	v := EmptyVector
	const n = 100
	for i := 0; i < n; i++ {
		v = v.Conj(value.Integer(i))
	}
	for i := n - 1; i >= 0; i-- {
		got, ok := v.Nth(i)
		if !ok || got != value.Value(value.Integer(i)) {
			t.Fatalf("Nth(%d) before pop = %v, %v", i, got, ok)
		}
		var err error
		v, err = v.Pop()
		if err != nil {
			t.Fatalf("unexpected pop error at %d: %v", i, err)
		}
		if v.Count() != i {
			t.Fatalf("expected count %d after pop, got %d", i, v.Count())
		}
	}
	if _, err := v.Pop(); err == nil {
		t.Fatalf("expected error popping empty vector")
	}
}

func TestVectorSeqIsNonCopyingView(t *testing.T) {
	v := NewVector(value.Integer(1), value.Integer(2), value.Integer(3))
	seq := v.Seq()
	var out []int64
	for !seq.IsEmptySeq() {
		out = append(out, int64(seq.First().(value.Integer)))
		seq = seq.Rest()
	}
	if len(out) != 3 || out[0] != 1 || out[2] != 3 {
		t.Fatalf("unexpected seq contents: %v", out)
	}
}

func TestTransientVectorRoundTrip(t *testing.T) {
	v := NewVector(value.Integer(1), value.Integer(2))
	tv := v.Transient()
	if _, err := tv.Conj(value.Integer(3)); err != nil {
		t.Fatalf("conj! error: %v", err)
	}
	if _, err := tv.Assoc(0, value.Integer(100)); err != nil {
		t.Fatalf("assoc! error: %v", err)
	}
	out, err := tv.Persistent()
	if err != nil {
		t.Fatalf("persistent! error: %v", err)
	}
	if out.Count() != 3 {
		t.Fatalf("expected count 3, got %d", out.Count())
	}
	got0, _ := out.Nth(0)
	if got0 != value.Value(value.Integer(100)) {
		t.Fatalf("expected 100, got %v", got0)
	}

	original0, _ := v.Nth(0)
	if original0 != value.Value(value.Integer(1)) {
		t.Fatalf("original vector must stay untouched, got %v", original0)
	}

	if _, err := tv.Conj(value.Integer(4)); err == nil {
		t.Fatalf("expected error using transient after persistent!")
	}
}

func TestTransientVectorManyOps(t *testing.T) {
	tv := EmptyVector.Transient()
	const n = 80
	for i := 0; i < n; i++ {
		if _, err := tv.Conj(value.Integer(i)); err != nil {
			t.Fatalf("conj! error at %d: %v", i, err)
		}
	}
	for i := 0; i < 10; i++ {
		if _, err := tv.Pop(); err != nil {
			t.Fatalf("pop! error: %v", err)
		}
	}
	out, err := tv.Persistent()
	if err != nil {
		t.Fatalf("persistent! error: %v", err)
	}
	if out.Count() != n-10 {
		t.Fatalf("expected count %d, got %d", n-10, out.Count())
	}
	for i := 0; i < n-10; i++ {
		got, ok := out.Nth(i)
		if !ok || got != value.Value(value.Integer(i)) {
			t.Fatalf("Nth(%d) = %v, %v", i, got, ok)
		}
	}
}
