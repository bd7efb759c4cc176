package collection

import (
	"testing"

	"github.com/gitrdm/lispcore/pkg/value"
)

func TestArrayMapAssocAndLookup(t *testing.T) {
	m, err := NewArrayMap(value.Keyword{Name: "a"}, value.Integer(1), value.Keyword{Name: "b"}, value.Integer(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := m.EntryAt(value.Keyword{Name: "a"})
	if !ok || v != value.Value(value.Integer(1)) {
		t.Fatalf("expected 1, got %v, %v", v, ok)
	}
	if m.Count() != 2 {
		t.Fatalf("expected count 2, got %d", m.Count())
	}
}

func TestArrayMapPromotesToHashMap(t *testing.T) {
	m := value.Value(EmptyArrayMap)
	for i := 0; i < arrayMapThreshold+5; i++ {
		switch mm := m.(type) {
		case *PersistentArrayMap:
			m = mm.Assoc(value.Integer(i), value.Integer(i*i))
		case *PersistentHashMap:
			m = mm.Assoc(value.Integer(i), value.Integer(i*i))
		}
	}
	hm, ok := m.(*PersistentHashMap)
	if !ok {
		t.Fatalf("expected promotion to PersistentHashMap, got %T", m)
	}
	for i := 0; i < arrayMapThreshold+5; i++ {
		v, ok := hm.EntryAt(value.Integer(i))
		if !ok || v != value.Value(value.Integer(i*i)) {
			t.Fatalf("entry %d missing or wrong: %v, %v", i, v, ok)
		}
	}
}

func TestHashMapAssocDissocImmutable(t *testing.T) {
	m1, err := NewHashMap(value.Integer(1), value.String("one"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2 := m1.Assoc(value.Integer(2), value.String("two")).(*PersistentHashMap)
	if m1.Count() != 1 {
		t.Fatalf("original map mutated, count %d", m1.Count())
	}
	if m2.Count() != 2 {
		t.Fatalf("expected count 2, got %d", m2.Count())
	}
	m3 := m2.Dissoc(value.Integer(1))
	if m3.Count() != 1 {
		t.Fatalf("expected count 1 after dissoc, got %d", m3.Count())
	}
	if _, ok := m3.EntryAt(value.Integer(1)); ok {
		t.Fatalf("expected key 1 to be gone")
	}
}

func TestTransientMapRoundTrip(t *testing.T) {
	tm := EmptyHashMap.Transient()
	for i := 0; i < 20; i++ {
		if _, err := tm.Assoc(value.Integer(i), value.Integer(i)); err != nil {
			t.Fatalf("assoc! error: %v", err)
		}
	}
	if _, err := tm.Dissoc(value.Integer(5)); err != nil {
		t.Fatalf("dissoc! error: %v", err)
	}
	out, err := tm.Persistent()
	if err != nil {
		t.Fatalf("persistent! error: %v", err)
	}
	if out.Count() != 19 {
		t.Fatalf("expected count 19, got %d", out.Count())
	}
	if _, err := tm.Assoc(value.Integer(99), value.Integer(99)); err == nil {
		t.Fatalf("expected error using transient after persistent!")
	}
}

func TestArrayMapEqlHashMapSameEntries(t *testing.T) {
	am, err := NewArrayMap(value.Keyword{Name: "a"}, value.Integer(1), value.Keyword{Name: "b"}, value.Integer(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hm, err := NewHashMap(value.Keyword{Name: "b"}, value.Integer(2), value.Keyword{Name: "a"}, value.Integer(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Eql(am, hm) {
		t.Fatalf("array-map and hash-map with the same entries must be Eql")
	}
	if !value.Eql(hm, am) {
		t.Fatalf("Eql must be symmetric across map representations")
	}
	if value.Hash(am) != value.Hash(hm) {
		t.Errorf("Hash(%v)=%d != Hash(%v)=%d though Eql", am, value.Hash(am), hm, value.Hash(hm))
	}
}

func TestHashSetConjDisj(t *testing.T) {
	s := NewHashSet(value.Integer(1), value.Integer(2), value.Integer(2), value.Integer(3))
	if s.Count() != 3 {
		t.Fatalf("expected count 3 (dedup), got %d", s.Count())
	}
	if !s.Has(value.Integer(2)) {
		t.Fatalf("expected set to contain 2")
	}
	s2 := s.Disj(value.Integer(2))
	if s2.Has(value.Integer(2)) {
		t.Fatalf("expected 2 removed")
	}
	if s.Has(value.Integer(2)) == false {
		t.Fatalf("original set must stay untouched")
	}
}

func TestTransientSetRoundTrip(t *testing.T) {
	ts := EmptyHashSet.Transient()
	for i := 0; i < 10; i++ {
		if _, err := ts.Conj(value.Integer(i)); err != nil {
			t.Fatalf("conj! error: %v", err)
		}
	}
	out, err := ts.Persistent()
	if err != nil {
		t.Fatalf("persistent! error: %v", err)
	}
	if out.Count() != 10 {
		t.Fatalf("expected count 10, got %d", out.Count())
	}
}
