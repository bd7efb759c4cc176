// Package ref implements the reference/concurrency types: Atom,
// Volatile, Delay, Future, Promise, and Agent, all sharing the
// dynamically-scaling pool in internal/pool for any work they dispatch
// asynchronously.
package ref

import (
	"sync"

	"github.com/gitrdm/lispcore/pkg/collection"
	"github.com/gitrdm/lispcore/pkg/value"
)

// maxWatchers bounds the number of registered watch functions on a
// single Atom, matching the "up to 16 watchers" cap in the reference
// types' concurrency contract.
const maxWatchers = 16

// Validator inspects a proposed new state and rejects it by returning
// an error. The caller then returns a *value.Thrown whose info map has
// :message "Invalid reference state" and :cause the validator's error
// text.
type Validator func(newVal value.Value) error

// Watcher is notified after a successful state transition.
type Watcher func(key value.Value, ref *Atom, oldVal, newVal value.Value)

// Atom is a synchronous, CAS-updated mutable reference.
type Atom struct {
	mu        sync.Mutex
	val       value.Value
	validator Validator
	watchers  map[value.Value]Watcher
	watchKeys []value.Value // insertion order, for ordered notification
}

func NewAtom(initial value.Value) *Atom {
	return &Atom{val: initial}
}

func (a *Atom) Tag() value.Tag { return value.TagAtom }

// Deref returns the current state.
func (a *Atom) Deref() value.Value {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.val
}

// SetValidator installs or clears (pass nil) the validator. An
// existing value must already satisfy a newly installed validator.
func (a *Atom) SetValidator(v Validator) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v != nil {
		if err := v(a.val); err != nil {
			data, _ := collection.NewArrayMap(
				value.Keyword{Name: "message"}, value.String("Invalid reference state"),
				value.Keyword{Name: "cause"}, value.String(err.Error()))
			return value.NewInvalidReferenceState(data)
		}
	}
	a.validator = v
	return nil
}

func (a *Atom) GetValidator() Validator {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.validator
}

// AddWatch registers fn under key, replacing any existing watcher
// under the same key. Returns an error once maxWatchers distinct keys
// are already registered. The 16-watcher cap is advisory; this uses a
// map keyed by watcher key rather than a fixed array, but preserves
// insertion-order notification via watchKeys.
func (a *Atom) AddWatch(key value.Value, fn Watcher) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.watchers == nil {
		a.watchers = make(map[value.Value]Watcher)
	}
	if _, exists := a.watchers[key]; !exists {
		if len(a.watchers) >= maxWatchers {
			return value.NewValueError("Too many watchers: limit is %d", maxWatchers)
		}
		a.watchKeys = append(a.watchKeys, key)
	}
	a.watchers[key] = fn
	return nil
}

func (a *Atom) RemoveWatch(key value.Value) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.watchers[key]; !exists {
		return
	}
	delete(a.watchers, key)
	for i, k := range a.watchKeys {
		if k == key {
			a.watchKeys = append(a.watchKeys[:i], a.watchKeys[i+1:]...)
			break
		}
	}
}

func (a *Atom) validate(newVal value.Value) error {
	if a.validator == nil {
		return nil
	}
	if err := a.validator(newVal); err != nil {
		data, _ := collection.NewArrayMap(
			value.Keyword{Name: "message"}, value.String("Invalid reference state"),
			value.Keyword{Name: "cause"}, value.String(err.Error()))
		return value.NewInvalidReferenceState(data)
	}
	return nil
}

// Reset unconditionally sets the state to newVal, subject to the
// validator, and returns newVal.
func (a *Atom) Reset(newVal value.Value) (value.Value, error) {
	a.mu.Lock()
	if err := a.validate(newVal); err != nil {
		a.mu.Unlock()
		return nil, err
	}
	old := a.val
	a.val = newVal
	watchers := a.snapshotWatchers()
	a.mu.Unlock()
	notifyAll(watchers, a, old, newVal)
	return newVal, nil
}

// Swap applies fn to the current state and installs the result,
// retrying if a concurrent Swap/Reset interleaves (fn must be free of
// side effects it cannot tolerate re-running, matching Clojure's swap!
// contract).
func (a *Atom) Swap(fn func(value.Value) (value.Value, error)) (value.Value, error) {
	for {
		a.mu.Lock()
		old := a.val
		a.mu.Unlock()

		newVal, err := fn(old)
		if err != nil {
			return nil, err
		}

		a.mu.Lock()
		if a.val != old {
			a.mu.Unlock()
			continue
		}
		if err := a.validate(newVal); err != nil {
			a.mu.Unlock()
			return nil, err
		}
		a.val = newVal
		watchers := a.snapshotWatchers()
		a.mu.Unlock()
		notifyAll(watchers, a, old, newVal)
		return newVal, nil
	}
}

// ResetVals is Reset, returning a two-element [old new] vector instead
// of just newVal.
func (a *Atom) ResetVals(newVal value.Value) (*collection.PersistentVector, error) {
	a.mu.Lock()
	if err := a.validate(newVal); err != nil {
		a.mu.Unlock()
		return nil, err
	}
	old := a.val
	a.val = newVal
	watchers := a.snapshotWatchers()
	a.mu.Unlock()
	notifyAll(watchers, a, old, newVal)
	return collection.NewVector(old, newVal), nil
}

// SwapVals is Swap, returning a two-element [old new] vector instead of
// just the new state.
func (a *Atom) SwapVals(fn func(value.Value) (value.Value, error)) (*collection.PersistentVector, error) {
	for {
		a.mu.Lock()
		old := a.val
		a.mu.Unlock()

		newVal, err := fn(old)
		if err != nil {
			return nil, err
		}

		a.mu.Lock()
		if a.val != old {
			a.mu.Unlock()
			continue
		}
		if err := a.validate(newVal); err != nil {
			a.mu.Unlock()
			return nil, err
		}
		a.val = newVal
		watchers := a.snapshotWatchers()
		a.mu.Unlock()
		notifyAll(watchers, a, old, newVal)
		return collection.NewVector(old, newVal), nil
	}
}

// CompareAndSet installs newVal only if the current state is oldVal
// (by value.Eql), returning whether the swap happened.
func (a *Atom) CompareAndSet(oldVal, newVal value.Value) (bool, error) {
	a.mu.Lock()
	if !value.Eql(a.val, oldVal) {
		a.mu.Unlock()
		return false, nil
	}
	if err := a.validate(newVal); err != nil {
		a.mu.Unlock()
		return false, err
	}
	old := a.val
	a.val = newVal
	watchers := a.snapshotWatchers()
	a.mu.Unlock()
	notifyAll(watchers, a, old, newVal)
	return true, nil
}

// watchEntry pairs a watcher with its key so a snapshot can be
// notified in registration order without holding the atom's lock.
type watchEntry struct {
	key value.Value
	fn  Watcher
}

func (a *Atom) snapshotWatchers() []watchEntry {
	if len(a.watchKeys) == 0 {
		return nil
	}
	out := make([]watchEntry, len(a.watchKeys))
	for i, k := range a.watchKeys {
		out[i] = watchEntry{key: k, fn: a.watchers[k]}
	}
	return out
}

func notifyAll(watchers []watchEntry, a *Atom, old, newVal value.Value) {
	for _, e := range watchers {
		e.fn(e.key, a, old, newVal)
	}
}
