package value

import "fmt"

// The error taxonomy: type, value, arity, arithmetic, index, and
// internal errors, plus user-thrown exceptions. Each is a distinct Go
// type (not just a string) so callers can errors.As to the category,
// while the formatted message follows the Clojure idiom word for word.

// TypeError reports an operand of the wrong kind, optionally pinned to
// an argument position.
type TypeError struct {
	Message string
	ArgPos  int // -1 if not applicable
}

func (e *TypeError) Error() string { return e.Message }

// NewTypeError builds a TypeError with no specific argument position.
func NewTypeError(format string, args ...any) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...), ArgPos: -1}
}

// NewTypeErrorAt builds a TypeError pinned to argument position pos
// (0-based), matching "Cannot cast X to number" style messages that
// also carry which argument was at fault.
func NewTypeErrorAt(pos int, format string, args ...any) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...), ArgPos: pos}
}

// ValueError reports a value that is the right kind but an invalid
// state for the operation (e.g. "Transient used after persistent!").
type ValueError struct{ Message string }

func (e *ValueError) Error() string { return e.Message }

func NewValueError(format string, args ...any) *ValueError {
	return &ValueError{Message: fmt.Sprintf(format, args...)}
}

// ArityError reports a function invoked with the wrong number of
// arguments.
type ArityError struct {
	FnName string
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("Wrong number of args (%d) passed to %s", e.Got, e.FnName)
}

func NewArityError(fnName string, got int) *ArityError {
	return &ArityError{FnName: fnName, Got: got}
}

// ArithmeticError reports divide-by-zero and exact-arithmetic overflow.
type ArithmeticError struct{ Message string }

func (e *ArithmeticError) Error() string { return e.Message }

func NewArithmeticError(format string, args ...any) *ArithmeticError {
	return &ArithmeticError{Message: fmt.Sprintf(format, args...)}
}

// DivideByZero is the canonical ArithmeticError for exact division and
// modulus/remainder by zero.
func DivideByZero() *ArithmeticError { return &ArithmeticError{Message: "Divide by zero"} }

// IndexError reports an out-of-range positional access.
type IndexError struct{ Message string }

func (e *IndexError) Error() string { return e.Message }

func NewIndexError(format string, args ...any) *IndexError {
	return &IndexError{Message: fmt.Sprintf(format, args...)}
}

// InternalError reports a runtime invariant violation that should be
// unreachable from well-formed input; it exists so such bugs surface as
// a distinct, greppable category instead of a generic panic.
type InternalError struct{ Message string }

func (e *InternalError) Error() string { return e.Message }

func NewInternalError(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

// Thrown carries a user-level exception value (an info-bearing map
// Value with message/data/cause/class-tag) across a Go error return, so
// a host try/catch can match on the wrapped Value instead of a Go type.
// This is the rewrite direction called out in the design notes: the
// exception payload rides in the error itself, not a package-level
// "last thrown exception" slot.
type Thrown struct {
	Val Value
}

func (e *Thrown) Error() string {
	if m, ok := e.Val.(MapLike); ok {
		if msg, found := m.EntryAt(Keyword{Name: "message"}); found {
			if s, ok := msg.(String); ok {
				return string(s)
			}
		}
	}
	return "user exception thrown"
}

// NewInvalidReferenceState builds the Thrown value raised when an atom
// validator rejects a candidate state. The caller supplies the info map;
// pkg/ref puts "Invalid reference state" under :message, which Error
// returns.
func NewInvalidReferenceState(newDataMap Value) *Thrown {
	return &Thrown{Val: newDataMap}
}
