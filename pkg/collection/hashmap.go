package collection

import (
	"strings"

	"github.com/gitrdm/lispcore/pkg/value"
)

// PersistentHashMap is an immutable hash map. Rather than porting
// Clojure's own 32-way HAMT node-for-node, this keeps to the structural
// contract (value.MapLike) the rest of the runtime depends on and builds
// it from Go's native map, bucketed by value.Hash with a per-bucket
// slice to resolve collisions via value.Eql — amortized O(1) lookup,
// same complexity class a hash map contract requires, without
// re-deriving a HAMT that nothing else in this module needs to see the
// internals of.
// Persistent update copies the bucket index (one entry per bucket) and
// the touched bucket's slice; the other buckets' slices are shared, so
// Assoc and Dissoc are linear in the number of buckets.
type PersistentHashMap struct {
	buckets map[uint64][]*MapEntry
	cnt     int
}

var EmptyHashMap = &PersistentHashMap{}

func NewHashMap(kvs ...value.Value) (*PersistentHashMap, error) {
	if len(kvs)%2 != 0 {
		return nil, value.NewValueError("No value supplied for key: %s", value.Print(kvs[len(kvs)-1]))
	}
	m := value.Value(EmptyHashMap)
	for i := 0; i < len(kvs); i += 2 {
		m = m.(*PersistentHashMap).Assoc(kvs[i], kvs[i+1])
	}
	return m.(*PersistentHashMap), nil
}

func (m *PersistentHashMap) Tag() value.Tag { return value.TagHashMap }
func (m *PersistentHashMap) Count() int     { return m.cnt }

func (m *PersistentHashMap) EntryAt(k value.Value) (value.Value, bool) {
	h := value.Hash(k)
	for _, e := range m.buckets[h] {
		if value.Eql(e.Key, k) {
			return e.Val, true
		}
	}
	return nil, false
}

func (m *PersistentHashMap) Keys() []value.Value {
	out := make([]value.Value, 0, m.cnt)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			out = append(out, e.Key)
		}
	}
	return out
}

// Assoc returns a new map with k associated to v; other buckets are
// shared with the receiver unchanged.
func (m *PersistentHashMap) Assoc(k, v value.Value) value.Value {
	h := value.Hash(k)
	newBuckets := make(map[uint64][]*MapEntry, len(m.buckets)+1)
	for hh, b := range m.buckets {
		newBuckets[hh] = b
	}
	bucket := m.buckets[h]
	for i, e := range bucket {
		if value.Eql(e.Key, k) {
			newBucket := append([]*MapEntry(nil), bucket...)
			newBucket[i] = &MapEntry{Key: k, Val: v}
			newBuckets[h] = newBucket
			return &PersistentHashMap{buckets: newBuckets, cnt: m.cnt}
		}
	}
	newBucket := append(append([]*MapEntry(nil), bucket...), &MapEntry{Key: k, Val: v})
	newBuckets[h] = newBucket
	return &PersistentHashMap{buckets: newBuckets, cnt: m.cnt + 1}
}

// Dissoc returns a new map with k removed, if present.
func (m *PersistentHashMap) Dissoc(k value.Value) *PersistentHashMap {
	h := value.Hash(k)
	bucket := m.buckets[h]
	idx := -1
	for i, e := range bucket {
		if value.Eql(e.Key, k) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m
	}
	newBuckets := make(map[uint64][]*MapEntry, len(m.buckets))
	for hh, b := range m.buckets {
		newBuckets[hh] = b
	}
	newBucket := append(append([]*MapEntry(nil), bucket[:idx]...), bucket[idx+1:]...)
	if len(newBucket) == 0 {
		delete(newBuckets, h)
	} else {
		newBuckets[h] = newBucket
	}
	return &PersistentHashMap{buckets: newBuckets, cnt: m.cnt - 1}
}

func (m *PersistentHashMap) entryPairs() []*MapEntry {
	out := make([]*MapEntry, 0, m.cnt)
	for _, bucket := range m.buckets {
		out = append(out, bucket...)
	}
	return out
}

func (m *PersistentHashMap) Seq() value.Seq {
	entries := m.entryPairs()
	if len(entries) == 0 {
		return emptyMapSeq
	}
	return &mapSeq{entries: entries, idx: 0}
}

func (m *PersistentHashMap) PrintValue() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, e := range m.entryPairs() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(value.Print(e.Key))
		b.WriteByte(' ')
		b.WriteString(value.Print(e.Val))
	}
	b.WriteByte('}')
	return b.String()
}

// Transient converts m into a TransientMap, sharing bucket slices until
// the transient actually mutates one of them.
func (m *PersistentHashMap) Transient() *TransientMap {
	buckets := make(map[uint64][]*MapEntry, len(m.buckets))
	for h, b := range m.buckets {
		buckets[h] = b
	}
	return &TransientMap{buckets: buckets, cnt: m.cnt}
}
