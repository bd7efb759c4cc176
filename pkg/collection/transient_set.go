package collection

import "github.com/gitrdm/lispcore/pkg/value"

// TransientSet is a single-owner, mutable builder for sets.
type TransientSet struct {
	buckets  map[uint64][]value.Value
	cnt      int
	consumed bool
}

func (t *TransientSet) Tag() value.Tag { return value.TagSet }
func (t *TransientSet) Count() int     { return t.cnt }

func (t *TransientSet) Has(v value.Value) bool {
	h := value.Hash(v)
	for _, e := range t.buckets[h] {
		if value.Eql(e, v) {
			return true
		}
	}
	return false
}

// Conj adds v in place and returns t.
func (t *TransientSet) Conj(v value.Value) (*TransientSet, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	if t.Has(v) {
		return t, nil
	}
	if t.buckets == nil {
		t.buckets = make(map[uint64][]value.Value)
	}
	h := value.Hash(v)
	bucket := t.buckets[h]
	t.buckets[h] = append(bucket[:len(bucket):len(bucket)], v)
	t.cnt++
	return t, nil
}

// Disj removes v in place, if present, and returns t.
func (t *TransientSet) Disj(v value.Value) (*TransientSet, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	h := value.Hash(v)
	bucket := t.buckets[h]
	for i, e := range bucket {
		if value.Eql(e, v) {
			t.buckets[h] = append(append([]value.Value(nil), bucket[:i]...), bucket[i+1:]...)
			t.cnt--
			break
		}
	}
	return t, nil
}

// Persistent finalizes t into an immutable set; t must not be used
// again afterward.
func (t *TransientSet) Persistent() (*PersistentHashSet, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	t.consumed = true
	buckets := make(map[uint64][]value.Value, len(t.buckets))
	for h, b := range t.buckets {
		buckets[h] = append([]value.Value(nil), b...)
	}
	return &PersistentHashSet{buckets: buckets, cnt: t.cnt}, nil
}
