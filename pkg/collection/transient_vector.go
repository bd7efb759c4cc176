package collection

import "github.com/gitrdm/lispcore/pkg/value"

// TransientVector is a single-owner, mutable builder for vectors. Every
// mutating method requires the transient not yet be persisted; violating
// that raises the same "Transient used after persistent!" ValueError for
// every transient type in this package (see transientConsumed).
type TransientVector struct {
	cnt      int
	shift    uint
	root     *vnode
	tail     []value.Value
	consumed bool
}

func (t *TransientVector) Tag() value.Tag { return value.TagVector }
func (t *TransientVector) Count() int     { return t.cnt }

func transientConsumed() error {
	return value.NewValueError("Transient used after persistent!")
}

func (t *TransientVector) ensureEditable(n *vnode) *vnode {
	if n.edit == t {
		return n
	}
	return cloneVNode(n, t)
}

// Conj appends a value in place and returns t (identity preserved).
func (t *TransientVector) Conj(val value.Value) (*TransientVector, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	if len(t.tail) < vecWidth {
		t.tail = append(t.tail, val)
		t.cnt++
		return t, nil
	}

	tailNode := &vnode{arr: toAnyArray(t.tail), edit: t}
	if (t.cnt >> vecBits) > (1 << t.shift) {
		newRoot := &vnode{edit: t}
		newRoot.arr[0] = t.root
		newRoot.arr[1] = newPath(t.shift, tailNode)
		t.root = newRoot
		t.shift += vecBits
	} else {
		t.root = t.pushTailMut(t.shift, t.root, tailNode)
	}
	t.tail = append(make([]value.Value, 0, vecWidth), val)
	t.cnt++
	return t, nil
}

func (t *TransientVector) pushTailMut(level uint, parent *vnode, tailNode *vnode) *vnode {
	parent = t.ensureEditable(parent)
	subidx := ((t.cnt - 1) >> level) & vecMask
	if level == vecBits {
		parent.arr[subidx] = tailNode
		return parent
	}
	if child, ok := parent.arr[subidx].(*vnode); ok && child != nil {
		parent.arr[subidx] = t.pushTailMut(level-vecBits, child, tailNode)
	} else {
		parent.arr[subidx] = newPath(level-vecBits, tailNode)
	}
	return parent
}

// Assoc replaces the element at i in place.
func (t *TransientVector) Assoc(i int, val value.Value) (*TransientVector, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	if i < 0 || i > t.cnt {
		return nil, value.NewIndexError("Index %d out of bounds for vector of length %d", i, t.cnt)
	}
	if i == t.cnt {
		return t.Conj(val)
	}
	tailoff := t.cnt - len(t.tail)
	if i >= tailoff {
		t.tail[i-tailoff] = val
		return t, nil
	}
	t.root = t.doAssocMut(t.shift, t.root, i, val)
	return t, nil
}

func (t *TransientVector) doAssocMut(level uint, n *vnode, i int, val value.Value) *vnode {
	n = t.ensureEditable(n)
	if level == 0 {
		n.arr[i&vecMask] = val
		return n
	}
	subidx := (i >> level) & vecMask
	n.arr[subidx] = t.doAssocMut(level-vecBits, n.arr[subidx].(*vnode), i, val)
	return n
}

// Pop removes the last element in place.
func (t *TransientVector) Pop() (*TransientVector, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	if t.cnt == 0 {
		return nil, value.NewValueError("Can't pop empty vector")
	}
	if t.cnt == 1 {
		t.cnt, t.shift, t.root, t.tail = 0, vecBits, cloneVNode(emptyVNode, t), nil
		return t, nil
	}
	if len(t.tail) > 1 {
		t.tail = t.tail[:len(t.tail)-1]
		t.cnt--
		return t, nil
	}

	pv := &PersistentVector{cnt: t.cnt, shift: t.shift, root: t.root}
	newTailLeaf := pv.arrayFor(t.cnt - 2)
	newTail := make([]value.Value, 0, vecWidth)
	for _, x := range newTailLeaf.arr {
		newTail = append(newTail, x.(value.Value))
	}
	newRoot := pv.popTail(t.shift, t.root)
	newShift := t.shift
	if newRoot == nil {
		newRoot = emptyVNode
	}
	if newShift > vecBits {
		if child, ok := newRoot.arr[1].(*vnode); !ok || child == nil {
			newRoot = newRoot.arr[0].(*vnode)
			newShift -= vecBits
		}
	}
	t.cnt--
	t.shift = newShift
	t.root = t.ensureEditable(newRoot)
	t.tail = newTail
	return t, nil
}

func (t *TransientVector) Nth(i int) (value.Value, bool) {
	pv := &PersistentVector{cnt: t.cnt, shift: t.shift, root: t.root, tail: t.tail}
	return pv.Nth(i)
}

// Persistent finalizes t into an immutable PersistentVector; t must not
// be used again afterward.
func (t *TransientVector) Persistent() (*PersistentVector, error) {
	if t.consumed {
		return nil, transientConsumed()
	}
	t.consumed = true
	return &PersistentVector{cnt: t.cnt, shift: t.shift, root: t.root, tail: append([]value.Value(nil), t.tail...)}, nil
}
