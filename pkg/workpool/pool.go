// Package workpool provides the fork-join work executor used by
// pkg/rtree's parallel traversal operations. It trades the teacher's
// queue-and-workers pool (see pkg/database.WorkerPool in the original
// laura-db source, built around a buffered task channel and a fixed set
// of long-lived goroutines) for a simpler one-goroutine-per-task model,
// since R-tree fan-out spawns a bounded, short-lived burst of subtree
// visits rather than a steady background stream of independent jobs.
package workpool

import "sync"

//go:generate mockgen -source pool.go -destination workpoolmock/pool_mock.go -package workpoolmock

// Pool runs fire-and-forget tasks, optionally bounding how many run
// concurrently. Go must not be called after Wait returns.
type Pool interface {
	// Go schedules task to run, possibly in a new goroutine. An unbounded
	// pool returns immediately; a bounded pool may block until a slot
	// frees up.
	Go(task func())

	// Wait blocks until every task scheduled with Go has returned.
	Wait()
}

// unboundedPool runs every task in its own goroutine with no concurrency
// limit.
type unboundedPool struct {
	wg sync.WaitGroup
}

// New returns a Pool with no limit on concurrently running tasks.
func New() Pool {
	return &unboundedPool{}
}

func (p *unboundedPool) Go(task func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		task()
	}()
}

func (p *unboundedPool) Wait() {
	p.wg.Wait()
}

// boundedPool runs at most n tasks concurrently, using a buffered channel
// as a counting semaphore.
type boundedPool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

// NewBounded returns a Pool that never runs more than n tasks at once. An
// n below 1 is treated as 1.
func NewBounded(n int) Pool {
	if n < 1 {
		n = 1
	}
	return &boundedPool{sem: make(chan struct{}, n)}
}

func (p *boundedPool) Go(task func()) {
	p.wg.Add(1)
	p.sem <- struct{}{}
	go func() {
		defer p.wg.Done()
		defer func() { <-p.sem }()
		task()
	}()
}

func (p *boundedPool) Wait() {
	p.wg.Wait()
}
