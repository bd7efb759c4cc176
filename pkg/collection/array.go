package collection

import (
	"strings"

	"github.com/gitrdm/lispcore/pkg/value"
)

// Array is a fixed-length, mutable, 0-indexed container — the Go
// analogue of a Java array as seen from Clojure. The runtime never
// enforces element types beyond the single bytes marker bit; isBytes
// exists purely so value.IsBytes has something to report for values
// created as byte arrays.
type Array struct {
	elems   []value.Value
	isBytes bool
}

// NewArray builds an Array holding vals (copied) with the given
// element-type marker.
func NewArray(isBytes bool, vals ...value.Value) *Array {
	elems := make([]value.Value, len(vals))
	copy(elems, vals)
	return &Array{elems: elems, isBytes: isBytes}
}

// NewArrayOfLen builds a zero-filled (Nil-filled) Array of length n.
func NewArrayOfLen(isBytes bool, n int) *Array {
	elems := make([]value.Value, n)
	for i := range elems {
		elems[i] = value.Nil
	}
	return &Array{elems: elems, isBytes: isBytes}
}

func (a *Array) Tag() value.Tag { return value.TagArray }
func (a *Array) Count() int     { return len(a.elems) }
func (a *Array) IsBytes() bool  { return a.isBytes }

func (a *Array) Nth(i int) (value.Value, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], true
}

// Set mutates the element at i in place; Array is the one collection
// type in this package without a persistent update path, matching
// Java array-set semantics.
func (a *Array) Set(i int, v value.Value) error {
	if i < 0 || i >= len(a.elems) {
		return value.NewIndexError("Index %d out of bounds for array of length %d", i, len(a.elems))
	}
	a.elems[i] = v
	return nil
}

func (a *Array) Seq() value.Seq {
	if len(a.elems) == 0 {
		return emptyArraySeq
	}
	return &arraySeq{a: a, idx: 0}
}

func (a *Array) PrintValue() string {
	var b strings.Builder
	b.WriteString("#array[")
	for i, e := range a.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(value.Print(e))
	}
	b.WriteByte(']')
	return b.String()
}

type arraySeq struct {
	a   *Array
	idx int
}

var emptyArraySeq = &arraySeq{a: &Array{}, idx: 0}

func (s *arraySeq) Tag() value.Tag   { return value.TagCons }
func (s *arraySeq) IsEmptySeq() bool { return s.idx >= len(s.a.elems) }
func (s *arraySeq) First() value.Value {
	if s.IsEmptySeq() {
		return value.Nil
	}
	return s.a.elems[s.idx]
}
func (s *arraySeq) Rest() value.Seq {
	if s.IsEmptySeq() {
		return s
	}
	return &arraySeq{a: s.a, idx: s.idx + 1}
}
