package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolSubmitRunsTask(t *testing.T) {
	p := New(4, 1, Config{})
	defer p.Shutdown()

	var ran int32
	var wg sync.WaitGroup
	wg.Add(1)
	err := p.Submit(context.Background(), func() {
		atomic.AddInt32(&ran, 1)
		wg.Done()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wg.Wait()
	if atomic.LoadInt32(&ran) != 1 {
		t.Fatalf("expected task to run once, ran %d times", ran)
	}
}

func TestPoolSubmitAfterShutdownErrors(t *testing.T) {
	p := New(2, 1, Config{})
	p.Shutdown()
	err := p.Submit(context.Background(), func() {})
	if err != ErrPoolShutdown {
		t.Fatalf("expected ErrPoolShutdown, got %v", err)
	}
}

func TestPoolSubmitRespectsContextCancellation(t *testing.T) {
	p := New(1, 1, Config{})
	defer p.Shutdown()

	block := make(chan struct{})
	defer close(block)

	// Occupy the single worker, then fill the buffered queue (capacity
	// maxWorkers*4 = 4) so the next Submit has no ready send case.
	_ = p.Submit(context.Background(), func() { <-block })
	for i := 0; i < 4; i++ {
		_ = p.Submit(context.Background(), func() { <-block })
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Submit(ctx, func() {})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPoolRecoversFromPanickingTask(t *testing.T) {
	p := New(2, 1, Config{})
	defer p.Shutdown()

	var wg sync.WaitGroup
	wg.Add(1)
	_ = p.Submit(context.Background(), func() {
		defer wg.Done()
		panic("boom")
	})
	wg.Wait()
	time.Sleep(10 * time.Millisecond)
	if p.Stats().Snapshot().TasksFailed == 0 {
		t.Fatalf("expected panicking task to be recorded as failed")
	}
}
