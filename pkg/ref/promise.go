package ref

import (
	"time"

	"github.com/gitrdm/lispcore/pkg/value"
)

// Promise is a single-delivery reference the caller, not the pool,
// fulfills — Deliver may be called from any goroutine exactly once.
type Promise struct {
	*cell
}

func NewPromise() *Promise {
	return &Promise{cell: newCell()}
}

func (p *Promise) Tag() value.Tag { return value.TagPromise }

// Deliver sets the promise's value; returns false if already
// delivered (a second deliver is a no-op, matching Clojure's deliver).
func (p *Promise) Deliver(val value.Value) bool {
	return p.deliver(val, nil)
}

func (p *Promise) Deref() value.Value {
	val, _ := p.get()
	return val
}

func (p *Promise) DerefTimeout(d time.Duration, timeoutVal value.Value) value.Value {
	val, _, ok := p.getTimeout(d)
	if !ok {
		return timeoutVal
	}
	return val
}

func (p *Promise) IsRealized() bool { return p.isDelivered() }
