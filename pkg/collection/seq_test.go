package collection

import (
	"errors"
	"testing"

	"github.com/gitrdm/lispcore/pkg/value"
)

func TestListConjIsFrontInsertion(t *testing.T) {
	l := NewList(value.Integer(2), value.Integer(3))
	l2 := l.Conj(value.Integer(1))
	if l2.Count() != 3 {
		t.Fatalf("expected count 3, got %d", l2.Count())
	}
	if l2.First() != value.Value(value.Integer(1)) {
		t.Fatalf("expected 1 at front, got %v", l2.First())
	}
	if l.Count() != 2 {
		t.Fatalf("original list mutated, count %d", l.Count())
	}
}

func TestConsOverArbitrarySeq(t *testing.T) {
	tail := NewList(value.Integer(2), value.Integer(3))
	c := NewCons(value.Integer(1), tail)
	var got []int64
	var s value.Seq = c
	for !s.IsEmptySeq() {
		got = append(got, int64(s.First().(value.Integer)))
		s = s.Rest()
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("unexpected seq: %v", got)
	}
}

func TestLazySeqRealizesOnce(t *testing.T) {
	calls := 0
	ls := NewLazySeq(func() (value.Seq, error) {
		calls++
		return NewList(value.Integer(1), value.Integer(2)), nil
	})
	_ = ls.First()
	_ = ls.First()
	_ = ls.Rest()
	if calls != 1 {
		t.Fatalf("expected thunk to run exactly once, ran %d times", calls)
	}
	if ls.First() != value.Value(value.Integer(1)) {
		t.Fatalf("expected first to be 1, got %v", ls.First())
	}
}

func TestLazySeqMemoizesError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	ls := NewLazySeq(func() (value.Seq, error) {
		calls++
		return nil, boom
	})
	if !ls.IsEmptySeq() {
		t.Fatalf("expected failed realization to present as empty")
	}
	_ = ls.IsEmptySeq()
	if calls != 1 {
		t.Fatalf("expected thunk to run exactly once even after error, ran %d times", calls)
	}
	if ls.Err() != boom {
		t.Fatalf("expected memoized error, got %v", ls.Err())
	}
}

func TestChunkedConsWalksChunkThenMore(t *testing.T) {
	chunk := []value.Value{value.Integer(1), value.Integer(2), value.Integer(3)}
	more := NewList(value.Integer(4), value.Integer(5))
	cc := NewChunkedCons(chunk, more)
	var got []int64
	var s value.Seq = cc
	for !s.IsEmptySeq() {
		got = append(got, int64(s.First().(value.Integer)))
		s = s.Rest()
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 elements, got %v", got)
	}
	for i, want := range []int64{1, 2, 3, 4, 5} {
		if got[i] != want {
			t.Fatalf("at %d expected %d, got %d", i, want, got[i])
		}
	}
}

func TestArraySetIsMutableInPlace(t *testing.T) {
	a := NewArray(true, value.Integer(1), value.Integer(2), value.Integer(3))
	if !value.IsBytes(a) {
		t.Fatalf("expected array to report bytes? true")
	}
	if err := a.Set(1, value.Integer(99)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := a.Nth(1)
	if v != value.Value(value.Integer(99)) {
		t.Fatalf("expected in-place mutation, got %v", v)
	}
	if err := a.Set(10, value.Integer(0)); err == nil {
		t.Fatalf("expected IndexError for out-of-range set")
	}
}
