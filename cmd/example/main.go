// Package main demonstrates the four core layers working together: a
// Context bootstraps a namespace with its dynamic vars and interop
// shims, the numeric tower and the persistent collections are called
// directly, and the reference layer coordinates an atom, a delay, and
// an agent.
package main

import (
	"fmt"

	"github.com/gitrdm/lispcore/pkg/collection"
	"github.com/gitrdm/lispcore/pkg/numeric"
	"github.com/gitrdm/lispcore/pkg/ref"
	"github.com/gitrdm/lispcore/pkg/runtime"
	"github.com/gitrdm/lispcore/pkg/value"
)

func main() {
	fmt.Println("=== lispcore example ===")
	fmt.Println()

	rtCtx := runtime.NewContext()
	defer rtCtx.Shutdown()

	ns := rtCtx.Namespaces().FindOrCreate("user")
	rtCtx.Bootstrap(ns)

	numericTower()
	persistentCollections()
	referenceTypes(rtCtx)
	namespaceAndBuiltins(rtCtx, ns)
}

func numericTower() {
	fmt.Println("1. Numeric tower:")

	promoted, err := numeric.MulPromoting(value.Integer(10000000000), value.Integer(10000000000))
	must(err)
	fmt.Printf("   (*' 10000000000 10000000000) => %s (%s)\n", value.Print(promoted), promoted.Tag())

	ratio, err := numeric.Div(value.Integer(10), value.Integer(3))
	must(err)
	fmt.Printf("   (/ 10 3) => %s (%s)\n", value.Print(ratio), ratio.Tag())

	whole, err := numeric.Div(value.Integer(10), value.Integer(5))
	must(err)
	fmt.Printf("   (/ 10 5) => %s (%s)\n", value.Print(whole), whole.Tag())

	m, err := numeric.Mod(value.Integer(-7), value.Integer(3))
	must(err)
	r, err := numeric.Rem(value.Integer(-7), value.Integer(3))
	must(err)
	fmt.Printf("   (mod -7 3) => %s, (rem -7 3) => %s\n", value.Print(m), value.Print(r))
	fmt.Println()
}

func persistentCollections() {
	fmt.Println("2. Persistent collections:")

	v := collection.NewVector(value.Integer(1), value.Integer(2))
	v2 := v.Conj(value.Integer(3))
	fmt.Printf("   (conj [1 2] 3) => %s, original unchanged => %s\n",
		v2.PrintValue(), v.PrintValue())

	tv := v2.Transient()
	tv, err := tv.Conj(value.Integer(4))
	must(err)
	frozen, err := tv.Persistent()
	must(err)
	fmt.Printf("   (persistent! (conj! (transient [1 2 3]) 4)) => %s\n", frozen.PrintValue())

	if _, err := tv.Conj(value.Integer(5)); err != nil {
		fmt.Printf("   reusing the transient after persistent! => error: %v\n", err)
	}

	l := collection.NewList().Conj(value.Integer(3)).Conj(value.Integer(2)).Conj(value.Integer(1))
	fmt.Printf("   (conj (conj (conj () 3) 2) 1) => %s\n", l.PrintValue())
	fmt.Println()
}

func referenceTypes(rtCtx *runtime.Context) {
	fmt.Println("3. Reference types:")

	a := ref.NewAtom(value.Integer(0))
	must(a.SetValidator(positiveValidator))
	if _, err := a.Reset(value.Integer(5)); err != nil {
		fmt.Printf("   reset! 5 rejected unexpectedly: %v\n", err)
	} else {
		fmt.Printf("   (reset! a 5) => @a = %s\n", value.Print(a.Deref()))
	}
	if _, err := a.Reset(value.Integer(-1)); err != nil {
		fmt.Printf("   (reset! a -1) => %v\n", err)
	}

	d := ref.NewDelay(func() (value.Value, error) {
		return value.String("computed once"), nil
	})
	first, err := d.Force()
	must(err)
	second, err := d.Force()
	must(err)
	fmt.Printf("   delay forced twice => %q, %q (same realized value)\n", first, second)

	agent := ref.NewAgent(rtCtx.Pool, value.Integer(0))
	must(agent.Send(func(state value.Value) (value.Value, error) {
		n := int64(state.(value.Integer))
		return value.Integer(n + 1), nil
	}))
	agent.Await()
	fmt.Printf("   agent after one send(inc) => %s\n", value.Print(agent.Deref()))
	fmt.Println()
}

func positiveValidator(v value.Value) error {
	i, ok := v.(value.Integer)
	if !ok || i <= 0 {
		return value.NewValueError("Invalid reference state")
	}
	return nil
}

func namespaceAndBuiltins(rtCtx *runtime.Context, ns *runtime.Namespace) {
	fmt.Println("4. Namespace & builtin table:")

	if maxInt, ok := ns.Lookup("__Integer-MAX_VALUE"); ok {
		fmt.Printf("   __Integer-MAX_VALUE => %s\n", value.Print(maxInt.Deref()))
	}

	if printLength, ok := ns.Lookup("*print-length*"); ok {
		fmt.Printf("   *print-length* default => %s (dynamic=%v)\n",
			value.Print(printLength.Deref()), printLength.IsDynamic())
	}

	fmt.Printf("   %d builtins registered\n", rtCtx.Builtins().Len())
	fmt.Println()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
