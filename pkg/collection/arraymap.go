package collection

import (
	"strings"

	"github.com/gitrdm/lispcore/pkg/value"
)

// arrayMapThreshold is the element count above which Assoc on a
// PersistentArrayMap promotes to a PersistentHashMap: array-maps are
// for small maps, and hash-maps take over once linear scan stops
// paying off. Clojure's own default is 8; this port keeps that number.
const arrayMapThreshold = 8

// PersistentArrayMap is a small immutable map backed by a flat,
// alternating key/value slice searched linearly. Equality is by key
// (value.Eql), matching Clojure's array-map semantics where keys need
// not be hashable in any particular way — only comparable.
type PersistentArrayMap struct {
	kvs []value.Value // len is always even: k0, v0, k1, v1, ...
}

var EmptyArrayMap = &PersistentArrayMap{}

// NewArrayMap builds a map from alternating key/value arguments.
func NewArrayMap(kvs ...value.Value) (*PersistentArrayMap, error) {
	if len(kvs)%2 != 0 {
		return nil, value.NewValueError("No value supplied for key: %s", value.Print(kvs[len(kvs)-1]))
	}
	m := EmptyArrayMap
	for i := 0; i < len(kvs); i += 2 {
		m = m.assocArray(kvs[i], kvs[i+1])
	}
	return m, nil
}

func (m *PersistentArrayMap) Tag() value.Tag { return value.TagMap }
func (m *PersistentArrayMap) Count() int     { return len(m.kvs) / 2 }

func (m *PersistentArrayMap) indexOf(k value.Value) int {
	for i := 0; i < len(m.kvs); i += 2 {
		if value.Eql(m.kvs[i], k) {
			return i
		}
	}
	return -1
}

func (m *PersistentArrayMap) EntryAt(k value.Value) (value.Value, bool) {
	i := m.indexOf(k)
	if i < 0 {
		return nil, false
	}
	return m.kvs[i+1], true
}

func (m *PersistentArrayMap) Keys() []value.Value {
	out := make([]value.Value, 0, m.Count())
	for i := 0; i < len(m.kvs); i += 2 {
		out = append(out, m.kvs[i])
	}
	return out
}

func (m *PersistentArrayMap) assocArray(k, v value.Value) *PersistentArrayMap {
	i := m.indexOf(k)
	if i >= 0 {
		newKvs := append([]value.Value(nil), m.kvs...)
		newKvs[i+1] = v
		return &PersistentArrayMap{kvs: newKvs}
	}
	newKvs := make([]value.Value, len(m.kvs), len(m.kvs)+2)
	copy(newKvs, m.kvs)
	newKvs = append(newKvs, k, v)
	return &PersistentArrayMap{kvs: newKvs}
}

// Assoc associates k with v, promoting to a PersistentHashMap once the
// resulting map would exceed arrayMapThreshold entries.
func (m *PersistentArrayMap) Assoc(k, v value.Value) value.Value {
	if m.indexOf(k) < 0 && m.Count() >= arrayMapThreshold {
		hm := m.toHashMap()
		return hm.Assoc(k, v)
	}
	return m.assocArray(k, v)
}

func (m *PersistentArrayMap) toHashMap() *PersistentHashMap {
	hm := EmptyHashMap
	for i := 0; i < len(m.kvs); i += 2 {
		hm = hm.Assoc(m.kvs[i], m.kvs[i+1]).(*PersistentHashMap)
	}
	return hm
}

// Dissoc removes k, if present.
func (m *PersistentArrayMap) Dissoc(k value.Value) *PersistentArrayMap {
	i := m.indexOf(k)
	if i < 0 {
		return m
	}
	newKvs := make([]value.Value, 0, len(m.kvs)-2)
	newKvs = append(newKvs, m.kvs[:i]...)
	newKvs = append(newKvs, m.kvs[i+2:]...)
	return &PersistentArrayMap{kvs: newKvs}
}

func (m *PersistentArrayMap) Seq() value.Seq {
	if len(m.kvs) == 0 {
		return emptyMapSeq
	}
	return &mapSeq{entries: m.entryPairs(), idx: 0}
}

func (m *PersistentArrayMap) entryPairs() []*MapEntry {
	out := make([]*MapEntry, 0, m.Count())
	for i := 0; i < len(m.kvs); i += 2 {
		out = append(out, &MapEntry{Key: m.kvs[i], Val: m.kvs[i+1]})
	}
	return out
}

func (m *PersistentArrayMap) PrintValue() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < len(m.kvs); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(value.Print(m.kvs[i]))
		b.WriteByte(' ')
		b.WriteString(value.Print(m.kvs[i+1]))
	}
	b.WriteByte('}')
	return b.String()
}

// Transient converts m into a TransientMap. Array-maps always build
// their transient on the same bucketed representation PersistentHashMap
// uses; array-maps exist to keep small *persistent* maps cheap to scan
// and print, not to avoid allocating a Go map during a transient edit
// session.
func (m *PersistentArrayMap) Transient() *TransientMap {
	return m.toHashMap().Transient()
}

// MapEntry is a single key/value pair produced while sequencing a map.
type MapEntry struct {
	Key, Val value.Value
}

func (e *MapEntry) Tag() value.Tag { return value.TagVector }
func (e *MapEntry) Count() int     { return 2 }
func (e *MapEntry) Nth(i int) (value.Value, bool) {
	switch i {
	case 0:
		return e.Key, true
	case 1:
		return e.Val, true
	default:
		return nil, false
	}
}
func (e *MapEntry) PrintValue() string {
	return "[" + value.Print(e.Key) + " " + value.Print(e.Val) + "]"
}

type mapSeq struct {
	entries []*MapEntry
	idx     int
}

var emptyMapSeq = &mapSeq{}

func (s *mapSeq) Tag() value.Tag   { return value.TagCons }
func (s *mapSeq) IsEmptySeq() bool { return s.idx >= len(s.entries) }
func (s *mapSeq) First() value.Value {
	if s.IsEmptySeq() {
		return value.Nil
	}
	return s.entries[s.idx]
}
func (s *mapSeq) Rest() value.Seq {
	if s.IsEmptySeq() {
		return s
	}
	return &mapSeq{entries: s.entries, idx: s.idx + 1}
}
