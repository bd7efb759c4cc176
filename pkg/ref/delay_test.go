package ref

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/lispcore/pkg/value"
)

func TestDelayForceRunsOnce(t *testing.T) {
	var calls int32
	d := NewDelay(func() (value.Value, error) {
		atomic.AddInt32(&calls, 1)
		return value.Integer(7), nil
	})
	require.False(t, d.IsRealized())

	v1, err := d.Force()
	require.NoError(t, err)
	v2, err := d.Force()
	require.NoError(t, err)

	require.Equal(t, value.Integer(7), v1)
	require.Equal(t, value.Integer(7), v2)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.True(t, d.IsRealized())
}

func TestDelayForceConcurrentCallersRunThunkOnce(t *testing.T) {
	var calls int32
	d := NewDelay(func() (value.Value, error) {
		atomic.AddInt32(&calls, 1)
		return value.Integer(1), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Force()
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDelayMemoizesError(t *testing.T) {
	var calls int32
	d := NewDelay(func() (value.Value, error) {
		atomic.AddInt32(&calls, 1)
		return nil, value.NewValueError("boom")
	})

	_, err1 := d.Force()
	_, err2 := d.Force()
	require.Error(t, err1)
	require.Error(t, err2)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
