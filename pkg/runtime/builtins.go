package runtime

import (
	"fmt"

	"github.com/gitrdm/lispcore/pkg/value"
)

// BuiltinFunc is the Go-level implementation backing a builtin entry.
// It is absent (nil) for special forms, which the compiler (out of
// scope here) handles directly rather than dispatching through a
// function value.
type BuiltinFunc func(args []value.Value) (value.Value, error)

// BuiltinEntry is one row of the builtin metadata table: name, doc,
// arglists, the version it was added in, and the implementing func.
type BuiltinEntry struct {
	Name     string
	Doc      string
	ArgLists value.Value // typically a vector-of-vectors Value; left to the caller
	Added    string      // e.g. "1.0", matching Clojure's :added metadata convention
	Func     BuiltinFunc // nil for a special form
}

// BuiltinTable aggregates BuiltinEntry rows under a single constraint:
// duplicate names are rejected at registration time, not silently
// overwritten or deferred to a lookup-time surprise.
type BuiltinTable struct {
	order   []string
	entries map[string]BuiltinEntry
}

// NewBuiltinTable constructs an empty table.
func NewBuiltinTable() *BuiltinTable {
	return &BuiltinTable{entries: make(map[string]BuiltinEntry)}
}

// Register adds entry to the table. It returns an error (not a panic)
// if entry.Name was already registered, so a host embedding this
// runtime gets to decide how to surface a duplicate-registration bug
// rather than crashing.
func (t *BuiltinTable) Register(entry BuiltinEntry) error {
	if entry.Name == "" {
		return value.NewValueError("builtin entry has no name")
	}
	if _, exists := t.entries[entry.Name]; exists {
		return value.NewValueError("duplicate builtin registration: %s", entry.Name)
	}
	t.entries[entry.Name] = entry
	t.order = append(t.order, entry.Name)
	return nil
}

// MustRegister is Register, panicking on error — for use in package
// init()-style builtin tables that want to fail fast on a
// configuration bug rather than returning an error from init.
func (t *BuiltinTable) MustRegister(entry BuiltinEntry) {
	if err := t.Register(entry); err != nil {
		panic(fmt.Sprintf("runtime: %v", err))
	}
}

// Lookup returns the entry registered under name.
func (t *BuiltinTable) Lookup(name string) (BuiltinEntry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Names returns every registered name in registration order.
func (t *BuiltinTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len reports how many entries are registered.
func (t *BuiltinTable) Len() int { return len(t.order) }

// InternInto installs every entry of t as a Var in ns, carrying
// doc/arglists/added metadata and, when Func is non-nil, a root value
// the host's evaluator can call directly. The Var's root is left nil
// for special-form entries (Func == nil); the evaluator is expected to
// special-case those by name instead of calling through the Var.
func (t *BuiltinTable) InternInto(ns *Namespace) {
	for _, name := range t.order {
		e := t.entries[name]
		v := ns.Intern(e.Name)
		v.SetMeta(e.Doc, e.ArgLists, e.Added)
		if e.Func != nil {
			v.Set(builtinFnValue{entry: e})
		}
	}
}

// builtinFnValue adapts a BuiltinEntry's Func to the value.Value
// interface so it can be installed as a Var's root and carries
// value.TagBuiltinFn for predicate dispatch (builtin-fn? style checks).
type builtinFnValue struct {
	entry BuiltinEntry
}

func (builtinFnValue) Tag() value.Tag { return value.TagBuiltinFn }

// Call invokes the wrapped Go function. It is not part of value.Value
// itself (the core deliberately does not prescribe a calling-convention
// interface — that is the evaluator's contract to define) but is
// exported so a host evaluator in this process can invoke it directly
// without re-deriving the BuiltinEntry.
func (b builtinFnValue) Call(args []value.Value) (value.Value, error) {
	return b.entry.Func(args)
}

func (b builtinFnValue) Name() string { return b.entry.Name }
