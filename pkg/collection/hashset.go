package collection

import (
	"strings"

	"github.com/gitrdm/lispcore/pkg/value"
)

// PersistentHashSet mirrors PersistentHashMap's bucketed representation
// (value.Hash buckets, value.Eql-resolved collisions), storing only
// elements rather than key/value pairs.
type PersistentHashSet struct {
	buckets map[uint64][]value.Value
	cnt     int
}

var EmptyHashSet = &PersistentHashSet{}

func NewHashSet(vals ...value.Value) *PersistentHashSet {
	s := EmptyHashSet
	for _, v := range vals {
		s = s.Conj(v)
	}
	return s
}

func (s *PersistentHashSet) Tag() value.Tag { return value.TagSet }
func (s *PersistentHashSet) Count() int     { return s.cnt }

func (s *PersistentHashSet) Has(v value.Value) bool {
	h := value.Hash(v)
	for _, e := range s.buckets[h] {
		if value.Eql(e, v) {
			return true
		}
	}
	return false
}

func (s *PersistentHashSet) Elements() []value.Value {
	out := make([]value.Value, 0, s.cnt)
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}
	return out
}

// Conj adds v, returning s unchanged (same pointer) if already present.
func (s *PersistentHashSet) Conj(v value.Value) *PersistentHashSet {
	if s.Has(v) {
		return s
	}
	h := value.Hash(v)
	newBuckets := make(map[uint64][]value.Value, len(s.buckets)+1)
	for hh, b := range s.buckets {
		newBuckets[hh] = b
	}
	newBuckets[h] = append(append([]value.Value(nil), s.buckets[h]...), v)
	return &PersistentHashSet{buckets: newBuckets, cnt: s.cnt + 1}
}

// Disj removes v, if present.
func (s *PersistentHashSet) Disj(v value.Value) *PersistentHashSet {
	h := value.Hash(v)
	bucket := s.buckets[h]
	idx := -1
	for i, e := range bucket {
		if value.Eql(e, v) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	newBuckets := make(map[uint64][]value.Value, len(s.buckets))
	for hh, b := range s.buckets {
		newBuckets[hh] = b
	}
	newBucket := append(append([]value.Value(nil), bucket[:idx]...), bucket[idx+1:]...)
	if len(newBucket) == 0 {
		delete(newBuckets, h)
	} else {
		newBuckets[h] = newBucket
	}
	return &PersistentHashSet{buckets: newBuckets, cnt: s.cnt - 1}
}

func (s *PersistentHashSet) Seq() value.Seq {
	elems := s.Elements()
	if len(elems) == 0 {
		return emptySetSeq
	}
	return &setSeq{elems: elems, idx: 0}
}

func (s *PersistentHashSet) PrintValue() string {
	var b strings.Builder
	b.WriteByte('#')
	b.WriteByte('{')
	for i, e := range s.Elements() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(value.Print(e))
	}
	b.WriteByte('}')
	return b.String()
}

func (s *PersistentHashSet) Transient() *TransientSet {
	buckets := make(map[uint64][]value.Value, len(s.buckets))
	for h, b := range s.buckets {
		buckets[h] = b
	}
	return &TransientSet{buckets: buckets, cnt: s.cnt}
}

type setSeq struct {
	elems []value.Value
	idx   int
}

var emptySetSeq = &setSeq{}

func (s *setSeq) Tag() value.Tag   { return value.TagCons }
func (s *setSeq) IsEmptySeq() bool { return s.idx >= len(s.elems) }
func (s *setSeq) First() value.Value {
	if s.IsEmptySeq() {
		return value.Nil
	}
	return s.elems[s.idx]
}
func (s *setSeq) Rest() value.Seq {
	if s.IsEmptySeq() {
		return s
	}
	return &setSeq{elems: s.elems, idx: s.idx + 1}
}
