// Package collection implements the persistent and transient collection
// layer: PersistentVector, PersistentArrayMap, PersistentHashMap,
// PersistentHashSet, List, Cons, LazySeq, ChunkedCons, Array, and their
// transient builder counterparts.
//
// PersistentVector below is the classic 32-way indexed trie with a
// trailing "tail" buffer, the same structure the header comment of the
// retrieved robpike/ivy persist.Slice names as its own inspiration
// ("similar to Clojure's persistent vectors"); this port keeps that
// node+tail shape but represents ownership for transients with an
// explicit edit-token field (mirroring Clojure's own AtomicReference
// field) rather than ivy's atomic.Value/unique-id scheme, since a
// transient here is never shared across goroutines and so needs no
// atomics.
package collection

import (
	"strings"

	"github.com/gitrdm/lispcore/pkg/value"
)

const vecBits = 5
const vecWidth = 1 << vecBits
const vecMask = vecWidth - 1

// vnode is an interior or leaf node of the trie. Interior nodes hold
// *vnode children in arr; leaf nodes (reached once the traversal shift
// reaches 0) hold value.Value elements directly. edit, when non-nil,
// names the TransientVector currently allowed to mutate this node
// in place; a nil edit means the node is shared/published and must be
// copied before any mutation.
type vnode struct {
	arr  [vecWidth]any
	edit *TransientVector
}

func cloneVNode(n *vnode, edit *TransientVector) *vnode {
	return &vnode{arr: n.arr, edit: edit}
}

var emptyVNode = &vnode{}

// PersistentVector is an immutable, structurally-shared vector.
type PersistentVector struct {
	cnt   int
	shift uint
	root  *vnode
	tail  []value.Value
}

// EmptyVector is the canonical zero-length vector.
var EmptyVector = &PersistentVector{cnt: 0, shift: vecBits, root: emptyVNode}

// NewVector builds a vector containing vals in order.
func NewVector(vals ...value.Value) *PersistentVector {
	v := EmptyVector
	for _, x := range vals {
		v = v.Conj(x)
	}
	return v
}

func (v *PersistentVector) Tag() value.Tag { return value.TagVector }
func (v *PersistentVector) Count() int     { return v.cnt }
func (v *PersistentVector) IsEmpty() bool  { return v.cnt == 0 }

func (v *PersistentVector) tailoff() int { return v.cnt - len(v.tail) }

func (v *PersistentVector) arrayFor(i int) *vnode {
	n := v.root
	for level := v.shift; level > 0; level -= vecBits {
		n = n.arr[(i>>level)&vecMask].(*vnode)
	}
	return n
}

// Nth returns the element at i, or (nil, false) if out of range.
func (v *PersistentVector) Nth(i int) (value.Value, bool) {
	if i < 0 || i >= v.cnt {
		return nil, false
	}
	if i >= v.tailoff() {
		return v.tail[i-v.tailoff()], true
	}
	n := v.arrayFor(i)
	return n.arr[i&vecMask].(value.Value), true
}

// MustNth panics-free accessor returning an IndexError for host callers
// that want a Go error rather than an (value, bool) pair.
func (v *PersistentVector) MustNth(i int) (value.Value, error) {
	val, ok := v.Nth(i)
	if !ok {
		return nil, value.NewIndexError("Index %d out of bounds for vector of length %d", i, v.cnt)
	}
	return val, nil
}

func toAnyArray(vals []value.Value) [vecWidth]any {
	var out [vecWidth]any
	for i, x := range vals {
		out[i] = x
	}
	return out
}

// Conj appends val at the tail.
func (v *PersistentVector) Conj(val value.Value) *PersistentVector {
	if len(v.tail) < vecWidth {
		newTail := make([]value.Value, len(v.tail)+1)
		copy(newTail, v.tail)
		newTail[len(v.tail)] = val
		return &PersistentVector{cnt: v.cnt + 1, shift: v.shift, root: v.root, tail: newTail}
	}

	tailNode := &vnode{arr: toAnyArray(v.tail)}
	var newRoot *vnode
	newShift := v.shift

	if (v.cnt >> vecBits) > (1 << v.shift) {
		newRoot = &vnode{}
		newRoot.arr[0] = v.root
		newRoot.arr[1] = newPath(v.shift, tailNode)
		newShift = v.shift + vecBits
	} else {
		newRoot = v.pushTail(v.shift, v.root, tailNode)
	}
	return &PersistentVector{cnt: v.cnt + 1, shift: newShift, root: newRoot, tail: []value.Value{val}}
}

func newPath(level uint, n *vnode) *vnode {
	if level == 0 {
		return n
	}
	ret := &vnode{}
	ret.arr[0] = newPath(level-vecBits, n)
	return ret
}

func (v *PersistentVector) pushTail(level uint, parent *vnode, tailNode *vnode) *vnode {
	ret := &vnode{arr: parent.arr}
	subidx := ((v.cnt - 1) >> level) & vecMask
	var toInsert any
	if level == vecBits {
		toInsert = tailNode
	} else if child, ok := parent.arr[subidx].(*vnode); ok && child != nil {
		toInsert = v.pushTail(level-vecBits, child, tailNode)
	} else {
		toInsert = newPath(level-vecBits, tailNode)
	}
	ret.arr[subidx] = toInsert
	return ret
}

// Assoc replaces the element at index i; i == Count() is equivalent to
// Conj (Clojure allows assoc-at-length to extend by one).
func (v *PersistentVector) Assoc(i int, val value.Value) (*PersistentVector, error) {
	if i < 0 || i > v.cnt {
		return nil, value.NewIndexError("Index %d out of bounds for vector of length %d", i, v.cnt)
	}
	if i == v.cnt {
		return v.Conj(val), nil
	}
	if i >= v.tailoff() {
		newTail := append([]value.Value(nil), v.tail...)
		newTail[i-v.tailoff()] = val
		return &PersistentVector{cnt: v.cnt, shift: v.shift, root: v.root, tail: newTail}, nil
	}
	return &PersistentVector{cnt: v.cnt, shift: v.shift, root: doAssoc(v.shift, v.root, i, val), tail: v.tail}, nil
}

func doAssoc(level uint, n *vnode, i int, val value.Value) *vnode {
	ret := &vnode{arr: n.arr}
	if level == 0 {
		ret.arr[i&vecMask] = val
		return ret
	}
	subidx := (i >> level) & vecMask
	ret.arr[subidx] = doAssoc(level-vecBits, n.arr[subidx].(*vnode), i, val)
	return ret
}

// Pop removes the last element.
func (v *PersistentVector) Pop() (*PersistentVector, error) {
	switch v.cnt {
	case 0:
		return nil, value.NewValueError("Can't pop empty vector")
	case 1:
		return EmptyVector, nil
	}
	if len(v.tail) > 1 {
		newTail := append([]value.Value(nil), v.tail[:len(v.tail)-1]...)
		return &PersistentVector{cnt: v.cnt - 1, shift: v.shift, root: v.root, tail: newTail}, nil
	}

	newTailLeaf := v.arrayFor(v.cnt - 2)
	newTail := make([]value.Value, vecWidth)
	for i, x := range newTailLeaf.arr {
		newTail[i] = x.(value.Value)
	}

	newRoot := v.popTail(v.shift, v.root)
	newShift := v.shift
	if newRoot == nil {
		newRoot = emptyVNode
	}
	if newShift > vecBits {
		if child, ok := newRoot.arr[1].(*vnode); !ok || child == nil {
			newRoot = newRoot.arr[0].(*vnode)
			newShift -= vecBits
		}
	}
	return &PersistentVector{cnt: v.cnt - 1, shift: newShift, root: newRoot, tail: newTail}, nil
}

func (v *PersistentVector) popTail(level uint, n *vnode) *vnode {
	subidx := ((v.cnt - 2) >> level) & vecMask
	if level > vecBits {
		child, _ := n.arr[subidx].(*vnode)
		newChild := v.popTail(level-vecBits, child)
		if newChild == nil && subidx == 0 {
			return nil
		}
		ret := &vnode{arr: n.arr}
		ret.arr[subidx] = newChild
		return ret
	}
	if subidx == 0 {
		return nil
	}
	ret := &vnode{arr: n.arr}
	ret.arr[subidx] = nil
	return ret
}

// Seq returns a non-copying sequence view over v.
func (v *PersistentVector) Seq() value.Seq {
	if v.cnt == 0 {
		return emptyVectorSeq
	}
	return &vectorSeq{v: v, idx: 0}
}

func (v *PersistentVector) PrintValue() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < v.cnt; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		val, _ := v.Nth(i)
		b.WriteString(value.Print(val))
	}
	b.WriteByte(']')
	return b.String()
}

// Transient converts v to a TransientVector in O(1).
func (v *PersistentVector) Transient() *TransientVector {
	t := &TransientVector{cnt: v.cnt, shift: v.shift, tail: append(make([]value.Value, 0, vecWidth), v.tail...)}
	t.root = cloneVNode(v.root, t)
	return t
}

type vectorSeq struct {
	v   *PersistentVector
	idx int
}

var emptyVectorSeq = &vectorSeq{v: EmptyVector, idx: 0}

func (s *vectorSeq) Tag() value.Tag { return value.TagCons }
func (s *vectorSeq) IsEmptySeq() bool {
	return s.idx >= s.v.cnt
}
func (s *vectorSeq) First() value.Value {
	if s.IsEmptySeq() {
		return value.Nil
	}
	val, _ := s.v.Nth(s.idx)
	return val
}
func (s *vectorSeq) Rest() value.Seq {
	if s.IsEmptySeq() {
		return s
	}
	return &vectorSeq{v: s.v, idx: s.idx + 1}
}
