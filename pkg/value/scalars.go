package value

import "fmt"

// NilValue is the singleton representing Clojure's nil. The zero value
// of the type is the only valid instance; use the exported Nil constant.
type NilValue struct{}

func (NilValue) Tag() Tag { return TagNil }

// Nil is the single nil value. Equality and hashing treat every NilValue
// as identical, so constructing additional instances is harmless but
// pointless — prefer this constant.
var Nil = NilValue{}

// Bool wraps a boolean.
type Bool bool

func (Bool) Tag() Tag { return TagBoolean }

// True and False are the two boolean values, exported for convenience.
const (
	True  Bool = true
	False Bool = false
)

// Char wraps a single Unicode codepoint.
type Char rune

func (Char) Tag() Tag { return TagChar }

// String wraps a Go string, compared and hashed by codepoint sequence.
type String string

func (String) Tag() Tag { return TagString }

// Keyword is a (namespace, name) pair interned by value, not by pointer:
// two Keywords with the same ns/name compare equal and hash equal.
type Keyword struct {
	Ns   string
	Name string
}

func (Keyword) Tag() Tag { return TagKeyword }

func (k Keyword) String() string {
	if k.Ns == "" {
		return ":" + k.Name
	}
	return ":" + k.Ns + "/" + k.Name
}

// Symbol is a (namespace, name) pair, distinct from Keyword only in tag
// and surface syntax; the runtime core never resolves symbols to vars
// itself (that is the analyzer's job), it only carries the pair.
type Symbol struct {
	Ns   string
	Name string
}

func (Symbol) Tag() Tag { return TagSymbol }

func (s Symbol) String() string {
	if s.Ns == "" {
		return s.Name
	}
	return s.Ns + "/" + s.Name
}

// IsTruthy implements Clojure's truthiness rule: everything is truthy
// except nil and false.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case NilValue:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// NewBool converts a Go bool to the Value representation.
func NewBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Truthy reports whether a candidate validator/predicate result should
// be treated as acceptance: nil and false reject, everything else
// (including a thrown error, handled by the caller before this point)
// accepts. It exists as a named alias of IsTruthy for call sites that
// read better with the "truthy" vocabulary (validators, watchers).
func Truthy(v Value) bool { return IsTruthy(v) }

// Reduced wraps a value to signal early termination to a reducing
// traversal. reduced?/deref on the wrapper are the only operations
// defined on it; everything else treats it as an opaque value.
type Reduced struct {
	Val Value
}

func (Reduced) Tag() Tag { return TagReduced }

// NewReduced wraps v so that any reduce-style traversal in this module
// that checks for Reduced will stop and unwrap it.
func NewReduced(v Value) Reduced { return Reduced{Val: v} }

// Deref returns the wrapped value.
func (r Reduced) Deref() Value { return r.Val }

// GoString supports %#v style debugging without implementing a full
// pretty-printer dependency for this package.
func (k Keyword) GoString() string { return fmt.Sprintf("value.Keyword(%q)", k.String()) }
