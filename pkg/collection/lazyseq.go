package collection

import (
	"sync"

	"github.com/gitrdm/lispcore/pkg/value"
)

// LazySeq wraps a thunk that is realized at most once, per the
// single-realization invariant: concurrent or repeated observation must
// never re-run the thunk, and a thunk that errors memoizes the error
// the same way realizing it a second time would just return the same
// failure rather than retrying. value.Seq has no error-returning
// methods, so a failed realization behaves as an empty seq to First/
// Rest/IsEmptySeq; callers that care about the failure call Err after
// touching the seq.
type LazySeq struct {
	once  sync.Once
	thunk func() (value.Seq, error)
	seq   value.Seq
	err   error
}

func NewLazySeq(thunk func() (value.Seq, error)) *LazySeq {
	return &LazySeq{thunk: thunk}
}

func (s *LazySeq) force() (value.Seq, error) {
	s.once.Do(func() {
		seq, err := s.thunk()
		s.thunk = nil
		if err != nil {
			s.err = err
			s.seq = EmptyList
			return
		}
		if seq == nil {
			seq = EmptyList
		}
		s.seq = seq
	})
	return s.seq, s.err
}

func (s *LazySeq) Tag() value.Tag { return value.TagLazySeq }

func (s *LazySeq) IsEmptySeq() bool {
	seq, _ := s.force()
	return seq.IsEmptySeq()
}

func (s *LazySeq) First() value.Value {
	seq, _ := s.force()
	return seq.First()
}

func (s *LazySeq) Rest() value.Seq {
	seq, _ := s.force()
	return seq.Rest()
}

// Err reports the error the thunk failed with, if any. Only meaningful
// after the seq has been observed (IsEmptySeq/First/Rest all force it).
func (s *LazySeq) Err() error {
	_, err := s.force()
	return err
}
