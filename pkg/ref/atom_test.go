package ref

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/lispcore/pkg/value"
)

func TestAtomSwapUpdatesValue(t *testing.T) {
	a := NewAtom(value.Integer(1))
	newVal, err := a.Swap(func(old value.Value) (value.Value, error) {
		return value.Integer(old.(value.Integer) + 1), nil
	})
	require.NoError(t, err)
	require.Equal(t, value.Integer(2), newVal)
	require.Equal(t, value.Integer(2), a.Deref())
}

func TestAtomSwapConcurrentIncrementsAreSerialized(t *testing.T) {
	a := NewAtom(value.Integer(0))
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := a.Swap(func(old value.Value) (value.Value, error) {
				return value.Integer(old.(value.Integer) + 1), nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	require.Equal(t, value.Integer(100), a.Deref())
}

func TestAtomResetVals(t *testing.T) {
	a := NewAtom(value.Integer(1))
	pair, err := a.ResetVals(value.Integer(2))
	require.NoError(t, err)
	require.Equal(t, 2, pair.Count())
	old, _ := pair.Nth(0)
	updated, _ := pair.Nth(1)
	require.Equal(t, value.Integer(1), old)
	require.Equal(t, value.Integer(2), updated)
	require.Equal(t, value.Integer(2), a.Deref())
}

func TestAtomSwapVals(t *testing.T) {
	a := NewAtom(value.Integer(1))
	pair, err := a.SwapVals(func(old value.Value) (value.Value, error) {
		return value.Integer(old.(value.Integer) + 1), nil
	})
	require.NoError(t, err)
	old, _ := pair.Nth(0)
	updated, _ := pair.Nth(1)
	require.Equal(t, value.Integer(1), old)
	require.Equal(t, value.Integer(2), updated)
	require.Equal(t, value.Integer(2), a.Deref())
}

func TestAtomCompareAndSet(t *testing.T) {
	a := NewAtom(value.Integer(1))
	ok, err := a.CompareAndSet(value.Integer(1), value.Integer(2))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = a.CompareAndSet(value.Integer(1), value.Integer(3))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, value.Integer(2), a.Deref())
}

func TestAtomValidatorRejectsBadState(t *testing.T) {
	a := NewAtom(value.Integer(1))
	err := a.SetValidator(func(v value.Value) error {
		if i, ok := v.(value.Integer); ok && i < 0 {
			return value.NewValueError("must be non-negative")
		}
		return nil
	})
	require.NoError(t, err)

	_, err = a.Swap(func(old value.Value) (value.Value, error) {
		return value.Integer(-1), nil
	})
	require.Error(t, err)
	require.Equal(t, value.Integer(1), a.Deref())
}

func TestAtomWatchersNotifiedOnChange(t *testing.T) {
	a := NewAtom(value.Integer(0))
	var mu sync.Mutex
	var seenOld, seenNew value.Value
	err := a.AddWatch(value.Keyword{Name: "w"}, func(key value.Value, ref *Atom, oldVal, newVal value.Value) {
		mu.Lock()
		defer mu.Unlock()
		seenOld, seenNew = oldVal, newVal
	})
	require.NoError(t, err)
	_, err = a.Reset(value.Integer(42))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, value.Integer(0), seenOld)
	require.Equal(t, value.Integer(42), seenNew)
}

func TestAtomRemoveWatch(t *testing.T) {
	a := NewAtom(value.Integer(0))
	key := value.Keyword{Name: "w"}
	calls := 0
	err := a.AddWatch(key, func(value.Value, *Atom, value.Value, value.Value) { calls++ })
	require.NoError(t, err)
	a.RemoveWatch(key)
	_, err = a.Reset(value.Integer(1))
	require.NoError(t, err)
	require.Equal(t, 0, calls)
}

func TestAtomAddWatchEnforcesLimit(t *testing.T) {
	a := NewAtom(value.Integer(0))
	for i := 0; i < maxWatchers; i++ {
		err := a.AddWatch(value.Integer(i), func(value.Value, *Atom, value.Value, value.Value) {})
		require.NoError(t, err)
	}
	err := a.AddWatch(value.Integer(maxWatchers), func(value.Value, *Atom, value.Value, value.Value) {})
	require.Error(t, err)
}
