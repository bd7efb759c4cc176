package value

import "math/big"

// sequentialTags is the set of tags the "sequential" equality rule
// applies to: vectors participate even though they are also Indexed,
// because Clojure equality treats them as sequentials first.
var sequentialTags = map[Tag]bool{
	TagVector:      true,
	TagList:        true,
	TagCons:        true,
	TagLazySeq:     true,
	TagChunkedCons: true,
}

func isNumericTag(t Tag) bool {
	switch t {
	case TagInteger, TagFloat, TagBigInt, TagBigDecimal, TagRatio:
		return true
	default:
		return false
	}
}

// isMapTag reports whether t is one of the two map representations;
// array-map and hash-map compare equal by entry set regardless of
// which one backs either operand.
func isMapTag(t Tag) bool {
	return t == TagMap || t == TagHashMap
}

// asSeq returns a Seq view of v (realizing nothing eagerly beyond what
// the concrete type's Seq()/First()/Rest() already does), for use by
// the sequential-equality rule.
func asSeq(v Value) (Seq, bool) {
	if s, ok := v.(Seq); ok {
		return s, true
	}
	if sq, ok := v.(Sequable); ok {
		return sq.Seq(), true
	}
	return nil, false
}

// Eql implements the global cross-category equality contract: numeric
// values compare by mathematical value (coercing to float only when a
// float operand is present), collections compare structurally,
// sequentials (vector/list/cons/lazy_seq/chunked_cons) compare
// element-wise across concrete representation, and everything else
// falls back to same-tag structural comparison.
func Eql(a, b Value) bool {
	if a == nil {
		a = Nil
	}
	if b == nil {
		b = Nil
	}

	ta, tb := a.Tag(), b.Tag()

	if isNumericTag(ta) && isNumericTag(tb) {
		return numericEql(a, b)
	}

	if sequentialTags[ta] && sequentialTags[tb] {
		return sequentialEql(a, b)
	}

	if isMapTag(ta) && isMapTag(tb) {
		return mapEql(a, b)
	}

	if ta != tb {
		return false
	}

	switch ta {
	case TagNil:
		return true
	case TagBoolean:
		return a.(Bool) == b.(Bool)
	case TagChar:
		return a.(Char) == b.(Char)
	case TagString:
		return a.(String) == b.(String)
	case TagKeyword:
		return a.(Keyword) == b.(Keyword)
	case TagSymbol:
		return a.(Symbol) == b.(Symbol)
	case TagSet:
		return setEql(a, b)
	default:
		// Reference types, functions, and anything else not covered
		// above compare by identity (Go equality of the underlying
		// value), matching Clojure's default object-identity equality
		// for atoms, agents, fns, etc.
		return a == b
	}
}

func numericEql(a, b Value) bool {
	if a.Tag() == TagFloat || b.Tag() == TagFloat {
		fa, aok := numericToFloat(a)
		fb, bok := numericToFloat(b)
		if !aok || !bok {
			return false
		}
		return fa == fb // NaN != NaN falls out of IEEE comparison naturally
	}
	ra, aok := AsBigRat(a)
	rb, bok := AsBigRat(b)
	if !aok || !bok {
		return false
	}
	return ra.Cmp(rb) == 0
}

func numericToFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Integer:
		return float64(t), true
	case Float:
		return float64(t), true
	case BigInt:
		f := new(big.Float).SetInt(t.V)
		fv, _ := f.Float64()
		return fv, true
	case Ratio:
		r := new(big.Rat).SetFrac(t.Num, t.Den)
		fv, _ := r.Float64()
		return fv, true
	case BigDecimal:
		r, ok := AsBigRat(v)
		if !ok {
			return 0, false
		}
		fv, _ := r.Float64()
		return fv, true
	default:
		return 0, false
	}
}

func sequentialEql(a, b Value) bool {
	sa, oka := asSeq(a)
	sb, okb := asSeq(b)
	if !oka || !okb {
		return false
	}
	for {
		ea, eb := sa.IsEmptySeq(), sb.IsEmptySeq()
		if ea != eb {
			return false
		}
		if ea {
			return true
		}
		if !Eql(sa.First(), sb.First()) {
			return false
		}
		sa, sb = sa.Rest(), sb.Rest()
	}
}

func mapEql(a, b Value) bool {
	ma, oka := a.(MapLike)
	mb, okb := b.(MapLike)
	if !oka || !okb {
		return false
	}
	if ma.Count() != mb.Count() {
		return false
	}
	for _, k := range ma.Keys() {
		va, _ := ma.EntryAt(k)
		vb, found := mb.EntryAt(k)
		if !found || !Eql(va, vb) {
			return false
		}
	}
	return true
}

func setEql(a, b Value) bool {
	sa, oka := a.(SetLike)
	sb, okb := b.(SetLike)
	if !oka || !okb {
		return false
	}
	if sa.Count() != sb.Count() {
		return false
	}
	for _, e := range sa.Elements() {
		if !sb.Has(e) {
			return false
		}
	}
	return true
}
