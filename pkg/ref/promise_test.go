package ref

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/lispcore/pkg/value"
)

func TestPromiseDeliverAndDeref(t *testing.T) {
	p := NewPromise()
	require.False(t, p.IsRealized())

	ok := p.Deliver(value.Integer(5))
	require.True(t, ok)
	require.True(t, p.IsRealized())
	require.Equal(t, value.Integer(5), p.Deref())
}

func TestPromiseSecondDeliverIsNoOp(t *testing.T) {
	p := NewPromise()
	require.True(t, p.Deliver(value.Integer(1)))
	require.False(t, p.Deliver(value.Integer(2)))
	require.Equal(t, value.Integer(1), p.Deref())
}

func TestPromiseDerefTimeoutReturnsFallback(t *testing.T) {
	p := NewPromise()
	got := p.DerefTimeout(20*time.Millisecond, value.Keyword{Name: "timeout"})
	require.Equal(t, value.Keyword{Name: "timeout"}, got)
}

func TestPromiseDerefUnblocksOnDeliver(t *testing.T) {
	p := NewPromise()
	done := make(chan value.Value)
	go func() {
		done <- p.Deref()
	}()

	time.Sleep(10 * time.Millisecond)
	p.Deliver(value.Integer(99))

	select {
	case v := <-done:
		require.Equal(t, value.Integer(99), v)
	case <-time.After(time.Second):
		t.Fatal("deref did not unblock after deliver")
	}
}
