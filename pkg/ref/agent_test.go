package ref

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/lispcore/internal/pool"
	"github.com/gitrdm/lispcore/pkg/value"
)

func TestAgentSendAppliesActionsInOrder(t *testing.T) {
	p := pool.New(4, 1, pool.Config{})
	defer p.Shutdown()

	a := NewAgent(p, value.Integer(0))
	for i := 0; i < 10; i++ {
		err := a.Send(func(old value.Value) (value.Value, error) {
			return value.Integer(old.(value.Integer) + 1), nil
		})
		require.NoError(t, err)
	}
	a.Await()
	require.Equal(t, value.Integer(10), a.Deref())
}

func TestAgentContinueModeSkipsFailedActionAndKeepsGoing(t *testing.T) {
	p := pool.New(2, 1, pool.Config{})
	defer p.Shutdown()

	a := NewAgent(p, value.Integer(1))
	var handledErr error
	a.SetErrorHandler(func(ag *Agent, err error) { handledErr = err })

	require.NoError(t, a.Send(func(old value.Value) (value.Value, error) {
		return nil, value.NewValueError("boom")
	}))
	require.NoError(t, a.Send(func(old value.Value) (value.Value, error) {
		return value.Integer(old.(value.Integer) + 1), nil
	}))
	a.Await()

	require.Error(t, a.LastError())
	require.NotNil(t, handledErr)
	require.False(t, a.IsFailed())
	require.Equal(t, value.Integer(2), a.Deref())
}

func TestAgentFailModeStopsProcessingUntilRestart(t *testing.T) {
	p := pool.New(2, 1, pool.Config{})
	defer p.Shutdown()

	a := NewAgent(p, value.Integer(1))
	a.SetErrorMode(ErrorModeFail)

	require.NoError(t, a.Send(func(old value.Value) (value.Value, error) {
		return nil, value.NewValueError("boom")
	}))
	a.Await()
	require.True(t, a.IsFailed())

	err := a.Send(func(old value.Value) (value.Value, error) {
		return value.Integer(99), nil
	})
	require.Error(t, err)

	require.NoError(t, a.Restart(value.Integer(5), true))
	require.False(t, a.IsFailed())
	require.NoError(t, a.Send(func(old value.Value) (value.Value, error) {
		return value.Integer(old.(value.Integer) + 1), nil
	}))
	a.Await()
	require.Equal(t, value.Integer(6), a.Deref())
}

func TestAgentAwaitForTimesOutWhileBusy(t *testing.T) {
	p := pool.New(2, 1, pool.Config{})
	defer p.Shutdown()

	a := NewAgent(p, value.Integer(0))
	block := make(chan struct{})
	require.NoError(t, a.Send(func(old value.Value) (value.Value, error) {
		<-block
		return old, nil
	}))

	ok := a.AwaitFor(20 * time.Millisecond)
	require.False(t, ok)

	close(block)
	require.True(t, a.AwaitFor(time.Second))
}
