package value

import (
	"strconv"
	"strings"
)

// Print renders v the way Clojure's pr-str would for the core tags this
// package owns. Collection types implement their own PrintValue method
// (in pkg/collection) by delegating back to Print
// for their elements; this function still needs to handle every tag so
// a bare scalar (or a Go-level %v of one inside an error message) reads
// correctly without importing the collection package.
func Print(v Value) string {
	if v == nil {
		return "nil"
	}
	switch t := v.(type) {
	case NilValue:
		return "nil"
	case Bool:
		if t {
			return "true"
		}
		return "false"
	case Integer:
		return strconv.FormatInt(int64(t), 10)
	case Float:
		return formatFloat(float64(t))
	case BigInt:
		return t.V.String() + "N"
	case BigDecimal:
		return formatBigDecimal(t)
	case Ratio:
		return t.Num.String() + "/" + t.Den.String()
	case Char:
		return "\\" + string(rune(t))
	case String:
		return strconv.Quote(string(t))
	case Keyword:
		return t.String()
	case Symbol:
		return t.String()
	case Reduced:
		return "#reduced[" + Print(t.Val) + "]"
	default:
		if p, ok := v.(interface{ PrintValue() string }); ok {
			return p.PrintValue()
		}
		return "#<" + v.Tag().String() + ">"
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN") {
		s += ".0"
	}
	return s
}

func formatBigDecimal(d BigDecimal) string {
	s := d.Unscaled.String()
	if d.Scale == 0 {
		return s + "M"
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for int32(len(s)) <= d.Scale {
		s = "0" + s
	}
	point := len(s) - int(d.Scale)
	out := s[:point] + "." + s[point:]
	if neg {
		out = "-" + out
	}
	return out + "M"
}
