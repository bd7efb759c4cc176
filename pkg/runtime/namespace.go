package runtime

import (
	"sort"
	"sync"
)

// Namespace is the minimal intern table the core needs to host builtin
// metadata and dynamic bindings — not the full reader/analyzer notion
// of a namespace (macros, refers, imports), which is out of scope here.
type Namespace struct {
	mu   sync.RWMutex
	name string
	vars map[string]*Var
}

func newNamespace(name string) *Namespace {
	return &Namespace{name: name, vars: make(map[string]*Var)}
}

func (ns *Namespace) Name() string { return ns.name }

// Intern returns the Var named by name in ns, creating it (rooted at
// nil) on first reference. Re-interning an existing name returns the
// same *Var, matching Clojure's idempotent intern contract.
func (ns *Namespace) Intern(name string) *Var {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if v, ok := ns.vars[name]; ok {
		return v
	}
	v := newVar(ns.name, name)
	ns.vars[name] = v
	return v
}

// Lookup returns the Var named by name without interning it.
func (ns *Namespace) Lookup(name string) (*Var, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	v, ok := ns.vars[name]
	return v, ok
}

// Vars returns every interned Var, sorted by name for deterministic
// iteration (tests and any introspective builtin depend on stable
// ordering rather than Go map iteration order).
func (ns *Namespace) Vars() []*Var {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	out := make([]*Var, 0, len(ns.vars))
	for _, v := range ns.vars {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Namespaces is the host-provided environment's registry of
// find-or-create namespaces.
type Namespaces struct {
	mu deadSimpleMutex
	m  map[string]*Namespace
}

// deadSimpleMutex is an alias of sync.Mutex. The zero value of
// Namespaces is usable without NewNamespaces: FindOrCreate allocates
// the map on first use.
type deadSimpleMutex = sync.Mutex

// NewNamespaces constructs an empty namespace registry.
func NewNamespaces() *Namespaces {
	return &Namespaces{m: make(map[string]*Namespace)}
}

// FindOrCreate returns the namespace named by name, creating it if this
// is the first reference.
func (r *Namespaces) FindOrCreate(name string) *Namespace {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ns, ok := r.m[name]; ok {
		return ns
	}
	ns := newNamespace(name)
	if r.m == nil {
		r.m = make(map[string]*Namespace)
	}
	r.m[name] = ns
	return ns
}

// Find returns the namespace named by name without creating it.
func (r *Namespaces) Find(name string) (*Namespace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ns, ok := r.m[name]
	return ns, ok
}
