package ref

import (
	"sync/atomic"

	"github.com/gitrdm/lispcore/pkg/value"
)

// Volatile is a mutable reference with no validator, no watchers, and
// no compare-and-set — a plain atomic box, cheaper than Atom for the
// cases that don't need its coordination machinery.
type Volatile struct {
	val atomic.Value
}

type volatileBox struct{ v value.Value }

func NewVolatile(initial value.Value) *Volatile {
	v := &Volatile{}
	v.val.Store(volatileBox{v: initial})
	return v
}

func (v *Volatile) Tag() value.Tag { return value.TagVolatile }

func (v *Volatile) Deref() value.Value {
	return v.val.Load().(volatileBox).v
}

// Set unconditionally installs newVal and returns it.
func (v *Volatile) Set(newVal value.Value) value.Value {
	v.val.Store(volatileBox{v: newVal})
	return newVal
}
