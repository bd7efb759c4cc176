package value

import "math"

// Hash computes a hash code consistent with Eql: for any x, y with
// Eql(x, y) == true, Hash(x) == Hash(y). This is required across
// numeric categories (so a mixed-type key set behaves correctly) and
// across collection representations (array-map vs hash-map, vector vs
// list/seq).
func Hash(v Value) uint64 {
	if v == nil {
		v = Nil
	}
	switch t := v.(type) {
	case NilValue:
		return 0
	case Bool:
		if t {
			return 1231
		}
		return 1237
	case Char:
		return mix64(uint64(t))
	case String:
		return fnv1a(string(t))
	case Keyword:
		return mix64(fnv1a("kw:"+t.Ns+"/"+t.Name)) ^ 0x9e3779b97f4a7c15
	case Symbol:
		return fnv1a("sym:" + t.Ns + "/" + t.Name)
	case Integer, Float, BigInt, BigDecimal, Ratio:
		return hashNumeric(t)
	case MapLike:
		return hashMap(t)
	case SetLike:
		return hashSet(t)
	default:
		if s, ok := asSeq(v); ok {
			return hashSeq(s)
		}
		// Reference types, functions: identity hash via pointer value
		// baked into a string is unavailable without reflection churn,
		// so fall back to a stable per-tag constant folded with the Go
		// identity comparison already used by Eql for these tags.
		return fnv1a(v.Tag().String())
	}
}

func hashNumeric(v Value) uint64 {
	f, ok := numericToFloat(v)
	if !ok {
		return 0
	}
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return mix64(math.Float64bits(f))
}

func hashSeq(s Seq) uint64 {
	var h uint64 = 1
	for !s.IsEmptySeq() {
		h = 31*h + Hash(s.First())
		s = s.Rest()
	}
	return h
}

func hashMap(m MapLike) uint64 {
	var h uint64
	for _, k := range m.Keys() {
		val, _ := m.EntryAt(k)
		h += mix64(Hash(k)) ^ mix64(Hash(val)*0xff51afd7ed558ccd)
	}
	return h
}

func hashSet(s SetLike) uint64 {
	var h uint64
	for _, e := range s.Elements() {
		h += mix64(Hash(e))
	}
	return h
}

// mix64 is a finalizer mix (splitmix64-style) used to spread low-entropy
// inputs (small ints, single chars) across the hash space.
func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

func fnv1a(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
