package ref

import (
	"context"
	"sync"
	"time"

	"github.com/gitrdm/lispcore/internal/pool"
	"github.com/gitrdm/lispcore/pkg/value"
)

// AgentAction is a state-transition function queued onto an Agent.
type AgentAction func(state value.Value) (value.Value, error)

// ErrorMode governs what an Agent does when an action returns an
// error: ErrorModeContinue drops that action's effect and keeps
// draining the queue; ErrorModeFail stops processing and marks the
// agent failed until Restart is called.
type ErrorMode int

const (
	ErrorModeContinue ErrorMode = iota
	ErrorModeFail
)

// ErrorHandler observes an action's error, whichever error mode is
// active; it never affects control flow.
type ErrorHandler func(a *Agent, err error)

// Agent serializes a sequence of state-transition actions over a
// value, dispatching them onto the shared pool one at a time (FIFO)
// so concurrent Send calls never run two actions for the same agent
// concurrently, matching Clojure's agent contract.
type Agent struct {
	mu           sync.Mutex
	cond         *sync.Cond
	state        value.Value
	queue        []AgentAction
	dispatching  bool
	failed       bool
	errorMode    ErrorMode
	errorHandler ErrorHandler
	lastError    error
	pool         *pool.Pool
}

func NewAgent(p *pool.Pool, initial value.Value) *Agent {
	a := &Agent{state: initial, pool: p, errorMode: ErrorModeContinue}
	a.cond = sync.NewCond(&a.mu)
	return a
}

func (a *Agent) Tag() value.Tag { return value.TagAgent }

func (a *Agent) Deref() value.Value {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Agent) SetErrorMode(mode ErrorMode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errorMode = mode
}

func (a *Agent) SetErrorHandler(h ErrorHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errorHandler = h
}

func (a *Agent) IsFailed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failed
}

func (a *Agent) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastError
}

func (a *Agent) QueueLength() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queue)
}

// Send enqueues action, dispatching the agent's processing loop onto
// the pool if it is not already running.
func (a *Agent) Send(action AgentAction) error {
	a.mu.Lock()
	if a.failed {
		a.mu.Unlock()
		return value.NewValueError("Agent has errors, needs restart")
	}
	a.queue = append(a.queue, action)
	needDispatch := !a.dispatching
	if needDispatch {
		a.dispatching = true
	}
	a.mu.Unlock()

	if needDispatch {
		return a.pool.Submit(context.Background(), a.processLoop)
	}
	return nil
}

// Restart clears the failed state and installs newState. The queue is
// already emptied when the agent fails and Send refuses actions while it
// is failed, so clearActions finds nothing left to discard.
func (a *Agent) Restart(newState value.Value, clearActions bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.failed {
		return value.NewValueError("Agent does not need a restart")
	}
	a.failed = false
	a.lastError = nil
	a.state = newState
	if clearActions {
		a.queue = nil
	}
	return nil
}

func (a *Agent) processLoop() {
	for {
		a.mu.Lock()
		if len(a.queue) == 0 {
			a.dispatching = false
			a.cond.Broadcast()
			a.mu.Unlock()
			return
		}
		action := a.queue[0]
		a.queue = a.queue[1:]
		state := a.state
		a.mu.Unlock()

		newState, err := action(state)

		a.mu.Lock()
		if err != nil {
			a.lastError = err
			handler := a.errorHandler
			if a.errorMode == ErrorModeFail {
				a.failed = true
				a.queue = nil
				a.dispatching = false
				a.cond.Broadcast()
				a.mu.Unlock()
				if handler != nil {
					handler(a, err)
				}
				return
			}
			a.mu.Unlock()
			if handler != nil {
				handler(a, err)
			}
			continue
		}
		a.state = newState
		a.mu.Unlock()
	}
}

// Await blocks until the agent's queue has fully drained.
func (a *Agent) Await() {
	a.mu.Lock()
	for a.dispatching || len(a.queue) > 0 {
		a.cond.Wait()
	}
	a.mu.Unlock()
}

// AwaitFor blocks up to d for the queue to drain; returns whether it
// drained in time.
func (a *Agent) AwaitFor(d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		a.Await()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(d):
		return false
	}
}
