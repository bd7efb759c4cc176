package runtime

import "github.com/gitrdm/lispcore/pkg/value"

// dynamicVarDefault pairs a pre-registered dynamic var's name with its
// default root value and whether it is conventionally rebindable
// per-thread; the flag exists so a host can distinguish "dynamic and
// commonly rebound" from "dynamic but usually left alone", matching
// Clojure's own mix.
type dynamicVarDefault struct {
	name    string
	def     value.Value
	dynamic bool
}

// dynamicVarDefaults is the fixed list of pre-registered dynamic vars,
// carrying the sensible Clojure defaults. *ns*, *file*, *err*, *in*,
// *out* have no meaningful default outside a live host (an actual
// namespace, file path, or I/O stream) so they default to nil and are
// expected to be Set by the host at startup.
var dynamicVarDefaults = []dynamicVarDefault{
	{"*ns*", value.Nil, true},
	{"*file*", value.Nil, true},
	{"*command-line-args*", value.Nil, true},
	{"*e", value.Nil, true},
	{"*flush-on-newline*", value.True, true},
	{"*print-dup*", value.False, true},
	{"*print-length*", value.Nil, true},
	{"*print-level*", value.Nil, true},
	{"*print-meta*", value.False, true},
	{"*print-namespace-maps*", value.True, true},
	{"*print-readably*", value.True, true},
	{"*read-eval*", value.True, true},
	{"*data-readers*", value.Nil, true},
	{"*default-data-reader-fn*", value.Nil, true},
	{"*source-path*", value.Nil, true},
	{"*unchecked-math*", value.False, true},
	{"*verbose-defrecords*", value.False, true},
	{"*repl*", value.False, true},
	{"*err*", value.Nil, true},
	{"*in*", value.Nil, true},
	{"*out*", value.Nil, true},
	// pprint-specific dynamic vars.
	{"*print-right-margin*", value.Integer(72), true},
	{"*print-miser-width*", value.Nil, true},
	{"*print-pretty*", value.True, true},
	{"*print-suppress-namespaces*", value.False, true},
	{"*print-radix*", value.False, true},
	{"*print-base*", value.Integer(10), true},
	{"*print-pprint-dispatch*", value.Nil, true},
}

// RegisterDynamicVars interns every pre-registered dynamic var into ns
// (conventionally the "clojure.core" or equivalent bootstrap
// namespace), installing its default root value and dynamic flag. It
// is idempotent: re-running it against a namespace that already has
// these vars just re-asserts the same defaults (Intern returns the
// existing Var rather than creating a duplicate).
func RegisterDynamicVars(ns *Namespace) {
	for _, d := range dynamicVarDefaults {
		v := ns.Intern(d.name)
		v.SetDynamic(d.dynamic)
		v.Set(d.def)
	}
}
