package runtime

import (
	"math"
	"math/big"

	"github.com/gitrdm/lispcore/pkg/value"
)

// interopField is one Java-interop static field shim, pre-interned
// under a mangled name so an analyzer (out of scope here) can rewrite
// a `Integer/MAX_VALUE`-shaped form into a plain var lookup instead of
// a real reflective field access.
type interopField struct {
	mangledName string
	val         value.Value
}

// mangledInteropName builds the `__<type>-<field>` name a Java-interop
// static field shim is interned under.
func mangledInteropName(typ, field string) string {
	return "__" + typ + "-" + field
}

// interopFields is the table of platform constants carried forward
// from Clojure's own numeric-tower boundary checks (Long/Integer
// MIN_VALUE/MAX_VALUE feed the *Exact family's overflow checks in
// pkg/numeric) plus the IEEE double constants the auxiliary math
// helpers reference. BigInteger constants are carried as BigInt so no
// shim ever silently truncates.
var interopFields = []interopField{
	{mangledInteropName("Integer", "MAX_VALUE"), value.Integer(math.MaxInt32)},
	{mangledInteropName("Integer", "MIN_VALUE"), value.Integer(math.MinInt32)},
	{mangledInteropName("Long", "MAX_VALUE"), value.Integer(math.MaxInt64)},
	{mangledInteropName("Long", "MIN_VALUE"), value.Integer(math.MinInt64)},
	{mangledInteropName("Double", "MAX_VALUE"), value.Float(math.MaxFloat64)},
	{mangledInteropName("Double", "MIN_VALUE"), value.Float(math.SmallestNonzeroFloat64)},
	{mangledInteropName("Double", "POSITIVE_INFINITY"), value.Float(math.Inf(1))},
	{mangledInteropName("Double", "NEGATIVE_INFINITY"), value.Float(math.Inf(-1))},
	{mangledInteropName("Double", "NaN"), value.Float(math.NaN())},
	{mangledInteropName("Math", "PI"), value.Float(math.Pi)},
	{mangledInteropName("Math", "E"), value.Float(math.E)},
	{mangledInteropName("BigInteger", "ZERO"), value.NewBigInt(big.NewInt(0))},
	{mangledInteropName("BigInteger", "ONE"), value.NewBigInt(big.NewInt(1))},
	{mangledInteropName("BigInteger", "TEN"), value.NewBigInt(big.NewInt(10))},
}

// RegisterInteropShims pre-interns every entry of interopFields into ns
// under its mangled name, carrying a static (non-dynamic) root value.
func RegisterInteropShims(ns *Namespace) {
	for _, f := range interopFields {
		v := ns.Intern(f.mangledName)
		v.Set(f.val)
	}
}
