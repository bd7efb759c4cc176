package collection

import "github.com/gitrdm/lispcore/pkg/value"

// TransientMap is a single-owner, mutable builder for maps, backed by
// the same hash-bucket representation as PersistentHashMap.
type TransientMap struct {
	buckets  map[uint64][]*MapEntry
	cnt      int
	consumed bool
}

func (t *TransientMap) Tag() value.Tag { return value.TagMap }
func (t *TransientMap) Count() int     { return t.cnt }

func (t *TransientMap) assoc(k, v value.Value) {
	if t.buckets == nil {
		t.buckets = make(map[uint64][]*MapEntry)
	}
	h := value.Hash(k)
	bucket := t.buckets[h]
	for i, e := range bucket {
		if value.Eql(e.Key, k) {
			nb := append([]*MapEntry(nil), bucket...)
			nb[i] = &MapEntry{Key: k, Val: v}
			t.buckets[h] = nb
			return
		}
	}
	t.buckets[h] = append(bucket[:len(bucket):len(bucket)], &MapEntry{Key: k, Val: v})
	t.cnt++
}

// Assoc associates k with v in place and returns t.
func (t *TransientMap) Assoc(k, v value.Value) (*TransientMap, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	t.assoc(k, v)
	return t, nil
}

// Dissoc removes k in place, if present, and returns t.
func (t *TransientMap) Dissoc(k value.Value) (*TransientMap, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	h := value.Hash(k)
	bucket := t.buckets[h]
	for i, e := range bucket {
		if value.Eql(e.Key, k) {
			t.buckets[h] = append(append([]*MapEntry(nil), bucket[:i]...), bucket[i+1:]...)
			t.cnt--
			return t, nil
		}
	}
	return t, nil
}

func (t *TransientMap) EntryAt(k value.Value) (value.Value, bool) {
	h := value.Hash(k)
	for _, e := range t.buckets[h] {
		if value.Eql(e.Key, k) {
			return e.Val, true
		}
	}
	return nil, false
}

// Persistent finalizes t into an immutable map; t must not be used
// again afterward.
func (t *TransientMap) Persistent() (*PersistentHashMap, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	t.consumed = true
	buckets := make(map[uint64][]*MapEntry, len(t.buckets))
	for h, b := range t.buckets {
		buckets[h] = append([]*MapEntry(nil), b...)
	}
	return &PersistentHashMap{buckets: buckets, cnt: t.cnt}, nil
}
