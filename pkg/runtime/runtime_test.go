package runtime

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gitrdm/lispcore/pkg/value"
)

func TestNamespaceInternIsIdempotent(t *testing.T) {
	nss := NewNamespaces()
	ns := nss.FindOrCreate("user")
	if ns2 := nss.FindOrCreate("user"); ns2 != ns {
		t.Fatalf("FindOrCreate returned a different namespace on second call")
	}
	v1 := ns.Intern("x")
	v2 := ns.Intern("x")
	if v1 != v2 {
		t.Fatalf("Intern returned different Vars for the same name")
	}
}

func TestDynamicVarDefaults(t *testing.T) {
	ns := newNamespace("clojure.core")
	RegisterDynamicVars(ns)
	v, ok := ns.Lookup("*print-length*")
	if !ok {
		t.Fatalf("*print-length* was not interned")
	}
	if !v.IsDynamic() {
		t.Fatalf("*print-length* should be dynamic")
	}
	if v.Deref() != value.Nil {
		t.Fatalf("*print-length* default should be nil, got %v", v.Deref())
	}
	v2, ok := ns.Lookup("*flush-on-newline*")
	if !ok || v2.Deref() != value.True {
		t.Fatalf("*flush-on-newline* should default to true")
	}
}

func TestInteropShims(t *testing.T) {
	ns := newNamespace("clojure.core")
	RegisterInteropShims(ns)
	v, ok := ns.Lookup("__Integer-MAX_VALUE")
	if !ok {
		t.Fatalf("__Integer-MAX_VALUE was not interned")
	}
	i, ok := v.Deref().(value.Integer)
	if !ok || int64(i) != 2147483647 {
		t.Fatalf("__Integer-MAX_VALUE = %v, want 2147483647", v.Deref())
	}
}

func TestBuiltinTableRejectsDuplicates(t *testing.T) {
	bt := NewBuiltinTable()
	entry := BuiltinEntry{
		Name: "inc",
		Doc:  "Returns a number one greater than num.",
		Func: func(args []value.Value) (value.Value, error) {
			i := args[0].(value.Integer)
			return value.Integer(i + 1), nil
		},
	}
	if err := bt.Register(entry); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := bt.Register(entry); err == nil {
		t.Fatalf("expected an error registering a duplicate builtin name")
	}
}

func TestBuiltinTableInternInto(t *testing.T) {
	bt := NewBuiltinTable()
	bt.MustRegister(BuiltinEntry{
		Name: "inc",
		Doc:  "increments",
		Func: func(args []value.Value) (value.Value, error) {
			return value.Integer(int64(args[0].(value.Integer)) + 1), nil
		},
	})
	ns := newNamespace("clojure.core")
	bt.InternInto(ns)

	v, ok := ns.Lookup("inc")
	if !ok {
		t.Fatalf("inc was not interned")
	}
	if v.Doc() != "increments" {
		t.Fatalf("doc metadata not carried: %q", v.Doc())
	}
	fn, ok := v.Deref().(builtinFnValue)
	if !ok {
		t.Fatalf("inc's root is not a builtin fn value: %T", v.Deref())
	}
	result, err := fn.Call([]value.Value{value.Integer(41)})
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if result.(value.Integer) != 42 {
		t.Fatalf("inc(41) = %v, want 42", result)
	}
}

func TestContextBootstrapAndShutdown(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(WithPoolSize(1, 2), WithLogWriter(&buf))
	defer ctx.Shutdown()

	ctx.Builtins().MustRegister(BuiltinEntry{
		Name: "identity",
		Func: func(args []value.Value) (value.Value, error) { return args[0], nil },
	})

	ns := ctx.Namespaces().FindOrCreate("user")
	ctx.Bootstrap(ns)

	if _, ok := ns.Lookup("*out*"); !ok {
		t.Fatalf("Bootstrap did not register dynamic vars")
	}
	if _, ok := ns.Lookup("__Long-MAX_VALUE"); !ok {
		t.Fatalf("Bootstrap did not register interop shims")
	}
	if _, ok := ns.Lookup("identity"); !ok {
		t.Fatalf("Bootstrap did not intern registered builtins")
	}

	ctx.Log.Info().Str("event", "bootstrap_complete").Log("namespace bootstrapped")
	if !strings.Contains(buf.String(), "bootstrap_complete") {
		t.Fatalf("structured log line missing expected field: %q", buf.String())
	}
}
