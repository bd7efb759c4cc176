package ref

import (
	"sync"
	"sync/atomic"

	"github.com/gitrdm/lispcore/pkg/value"
)

// Delay memoizes a thunk's result (or error) the first time it is
// forced, exactly once, regardless of how many goroutines force it
// concurrently — the same sync.Once-backed shape pkg/collection's
// LazySeq uses, since both need a single-realization guarantee.
type Delay struct {
	once     sync.Once
	thunk    func() (value.Value, error)
	val      value.Value
	err      error
	realized atomic.Bool
}

func NewDelay(thunk func() (value.Value, error)) *Delay {
	return &Delay{thunk: thunk}
}

func (d *Delay) Tag() value.Tag { return value.TagDelay }

// Force runs the thunk on first call (memoizing the result or error)
// and returns the memoized outcome on every subsequent call.
func (d *Delay) Force() (value.Value, error) {
	d.once.Do(func() {
		d.val, d.err = d.thunk()
		d.thunk = nil
		d.realized.Store(true)
	})
	return d.val, d.err
}

// IsRealized reports whether Force has already run, without forcing.
func (d *Delay) IsRealized() bool {
	return d.realized.Load()
}
