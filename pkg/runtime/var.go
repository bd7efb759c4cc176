// Package runtime provides the host-facing surface on top of the four
// core layers (pkg/value, pkg/numeric, pkg/collection, pkg/ref): the
// builtin metadata table, namespace/var registration, the fixed list of
// pre-registered dynamic vars, Java-interop static field shims, and a
// Context handle carrying a pool and a structured logger rather than
// reaching for a package-level global.
package runtime

import (
	"sync"

	"github.com/gitrdm/lispcore/pkg/value"
)

// Var is a mutable named root binding interned in a Namespace. Unlike
// Atom it has no validator/watcher machinery — Clojure vars are a
// simpler single-field box, just one that also carries metadata.
type Var struct {
	mu       sync.RWMutex
	name     string
	nsName   string
	root     value.Value
	dynamic  bool
	doc      string
	arglists value.Value
	added    string
}

func newVar(nsName, name string) *Var {
	return &Var{nsName: nsName, name: name, root: value.Nil}
}

func (v *Var) Tag() value.Tag { return value.TagVarRef }

func (v *Var) Name() string   { return v.name }
func (v *Var) NsName() string { return v.nsName }

// Deref returns the var's current root value.
func (v *Var) Deref() value.Value {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.root
}

// Set installs newVal as the var's root value and returns it.
func (v *Var) Set(newVal value.Value) value.Value {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.root = newVal
	return newVal
}

func (v *Var) IsDynamic() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.dynamic
}

func (v *Var) SetDynamic(dynamic bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dynamic = dynamic
}

// SetMeta installs the doc/arglists/added metadata fields in one call,
// matching how the builtin registration table fills them in
// immediately after interning.
func (v *Var) SetMeta(doc string, arglists value.Value, added string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.doc, v.arglists, v.added = doc, arglists, added
}

func (v *Var) Doc() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.doc
}

func (v *Var) ArgLists() value.Value {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.arglists
}

func (v *Var) Added() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.added
}
