package collection

import "github.com/gitrdm/lispcore/pkg/value"

// ChunkedCons presents a seq view over an already-realized chunk (a
// contiguous run of values produced together, e.g. by a chunked
// reduction over a vector) followed by a possibly-lazy more seq. It
// lets consumers walk the chunk's elements without forcing more until
// the chunk itself is exhausted.
type ChunkedCons struct {
	chunk []value.Value
	idx   int
	more  value.Seq
}

func NewChunkedCons(chunk []value.Value, more value.Seq) *ChunkedCons {
	return &ChunkedCons{chunk: chunk, more: more}
}

func (c *ChunkedCons) Tag() value.Tag { return value.TagChunkedCons }

func (c *ChunkedCons) IsEmptySeq() bool {
	if c.idx < len(c.chunk) {
		return false
	}
	return c.more == nil || c.more.IsEmptySeq()
}

func (c *ChunkedCons) First() value.Value {
	if c.idx < len(c.chunk) {
		return c.chunk[c.idx]
	}
	if c.more != nil {
		return c.more.First()
	}
	return value.Nil
}

func (c *ChunkedCons) Rest() value.Seq {
	if c.idx < len(c.chunk)-1 {
		return &ChunkedCons{chunk: c.chunk, idx: c.idx + 1, more: c.more}
	}
	if c.idx < len(c.chunk) {
		if c.more == nil {
			return EmptyList
		}
		return c.more
	}
	if c.more != nil {
		return c.more.Rest()
	}
	return EmptyList
}

// ChunkFirst returns the unconsumed portion of the realized chunk,
// letting a chunked-aware reduce avoid walking element-by-element.
func (c *ChunkedCons) ChunkFirst() []value.Value {
	return c.chunk[c.idx:]
}

// ChunkRest returns the seq following this entire chunk, skipping
// straight to more regardless of idx.
func (c *ChunkedCons) ChunkRest() value.Seq {
	if c.more == nil {
		return EmptyList
	}
	return c.more
}
