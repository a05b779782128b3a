package workpool

import (
	"sync/atomic"
	"testing"
)

func TestUnboundedPoolRunsAllTasks(t *testing.T) {
	pool := New()
	var counter atomic.Int64
	const numTasks = 50

	for i := 0; i < numTasks; i++ {
		pool.Go(func() {
			counter.Add(1)
		})
	}
	pool.Wait()

	if counter.Load() != numTasks {
		t.Fatalf("counter = %d; want %d", counter.Load(), numTasks)
	}
}

func TestBoundedPoolNeverExceedsLimit(t *testing.T) {
	const limit = 4
	pool := NewBounded(limit)

	var active, maxActive atomic.Int64
	const numTasks = 50

	for i := 0; i < numTasks; i++ {
		pool.Go(func() {
			cur := active.Add(1)
			for {
				prev := maxActive.Load()
				if cur <= prev || maxActive.CompareAndSwap(prev, cur) {
					break
				}
			}
			active.Add(-1)
		})
	}
	pool.Wait()

	if maxActive.Load() > limit {
		t.Fatalf("observed %d concurrent tasks; limit was %d", maxActive.Load(), limit)
	}
}

func TestNewBoundedClampsToOne(t *testing.T) {
	pool := NewBounded(0)
	var counter atomic.Int64
	pool.Go(func() { counter.Add(1) })
	pool.Wait()
	if counter.Load() != 1 {
		t.Fatalf("counter = %d; want 1", counter.Load())
	}
}
