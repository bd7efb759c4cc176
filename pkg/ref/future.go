package ref

import (
	"context"
	"sync"
	"time"

	"github.com/gitrdm/lispcore/internal/pool"
	"github.com/gitrdm/lispcore/pkg/value"
)

// cell is the single-delivery box shared by Future and Promise: both
// are "write once, many readers block until written" references, the
// only difference being who calls deliver and when. A closed channel
// is used as the wait signal rather than a condition variable so Get
// composes with context deadlines and time.After through select,
// without the cancellation plumbing a sync.Cond would need.
type cell struct {
	mu        sync.Mutex
	done      chan struct{}
	delivered bool
	cancelled bool
	val       value.Value
	err       error
}

func newCell() *cell {
	return &cell{done: make(chan struct{})}
}

func (c *cell) deliver(val value.Value, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.delivered {
		return false
	}
	c.val, c.err, c.delivered = val, err, true
	close(c.done)
	return true
}

func (c *cell) tryCancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.delivered {
		return false
	}
	c.cancelled = true
	c.val, c.err, c.delivered = nil, value.NewValueError("future has been cancelled"), true
	close(c.done)
	return true
}

func (c *cell) isDelivered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delivered
}

func (c *cell) isCancelled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancelled
}

func (c *cell) get() (value.Value, error) {
	<-c.done
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val, c.err
}

func (c *cell) getTimeout(d time.Duration) (value.Value, error, bool) {
	select {
	case <-c.done:
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.val, c.err, true
	case <-time.After(d):
		return nil, nil, false
	}
}

// Future runs fn on the shared pool and memoizes its outcome.
type Future struct {
	*cell
}

// NewFuture submits fn to p and returns a handle to its eventual
// result. fn runs at most once; Cancel before fn starts prevents it
// from ever running its result into the cell (the pool still executes
// fn, but the result is discarded).
func NewFuture(p *pool.Pool, fn func() (value.Value, error)) (*Future, error) {
	f := &Future{cell: newCell()}
	err := p.Submit(context.Background(), func() {
		val, err := fn()
		f.deliver(val, err)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Future) Tag() value.Tag { return value.TagFuture }

// Deref blocks until fn completes (or was cancelled) and returns its
// outcome.
func (f *Future) Deref() (value.Value, error) { return f.get() }

// DerefTimeout blocks up to d; ok is false on timeout.
func (f *Future) DerefTimeout(d time.Duration) (val value.Value, err error, ok bool) {
	return f.getTimeout(d)
}

func (f *Future) IsRealized() bool { return f.isDelivered() }
func (f *Future) IsCancelled() bool { return f.isCancelled() }

// Cancel marks the future cancelled if it has not yet delivered a
// result; returns whether the cancellation took effect.
func (f *Future) Cancel() bool { return f.tryCancel() }
