package collection

import (
	"strings"

	"github.com/gitrdm/lispcore/pkg/value"
)

// List is a persistent singly-linked list. Conj prepends, matching
// Clojure's list semantics (a list's "natural" insertion end is the
// front, unlike a vector's tail).
type List struct {
	first value.Value
	rest  *List
	cnt   int
}

// EmptyList is the canonical empty list, also the seq terminator every
// List.Rest() eventually reaches.
var EmptyList = &List{}

func NewList(vals ...value.Value) *List {
	l := EmptyList
	for i := len(vals) - 1; i >= 0; i-- {
		l = l.Conj(vals[i])
	}
	return l
}

func (l *List) Tag() value.Tag    { return value.TagList }
func (l *List) Count() int        { return l.cnt }
func (l *List) IsEmptySeq() bool  { return l.cnt == 0 }
func (l *List) First() value.Value {
	if l.IsEmptySeq() {
		return value.Nil
	}
	return l.first
}
func (l *List) Rest() value.Seq {
	if l.IsEmptySeq() {
		return l
	}
	return l.rest
}

// Conj prepends val, returning a new list sharing the receiver as its
// tail.
func (l *List) Conj(val value.Value) *List {
	return &List{first: val, rest: l, cnt: l.cnt + 1}
}

func (l *List) Seq() value.Seq { return l }

func (l *List) PrintValue() string {
	var b strings.Builder
	b.WriteByte('(')
	for n, first := l, true; !n.IsEmptySeq(); n = n.rest {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(value.Print(n.first))
	}
	b.WriteByte(')')
	return b.String()
}

// Cons is a single sequence cell: an arbitrary first paired with an
// arbitrary Seq rest. Unlike List, Cons does not track a count (an
// arbitrary Seq tail may be lazy/infinite), and it has no Count method —
// callers needing O(1) count should prefer List or realize the seq into
// a vector first.
type Cons struct {
	first value.Value
	rest  value.Seq
}

func NewCons(first value.Value, rest value.Seq) *Cons {
	return &Cons{first: first, rest: rest}
}

func (c *Cons) Tag() value.Tag      { return value.TagCons }
func (c *Cons) IsEmptySeq() bool    { return false }
func (c *Cons) First() value.Value  { return c.first }
func (c *Cons) Rest() value.Seq     { return c.rest }
func (c *Cons) Seq() value.Seq      { return c }

func (c *Cons) PrintValue() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(value.Print(c.first))
	var s value.Seq = c.rest
	for !s.IsEmptySeq() {
		b.WriteByte(' ')
		b.WriteString(value.Print(s.First()))
		s = s.Rest()
	}
	b.WriteByte(')')
	return b.String()
}
