// Package concurrent wraps pkg/longtree.Tree behind a reader/writer lock,
// the spec's "concurrent wrapper (linear tree only)". Every operation
// delegates to the underlying tree; Get and GetAll hold a read lock for
// their full duration, Put/ComputeIfAbsent/Remove/Clear hold a write lock,
// and Range returns an iterator that takes the read lock once per step
// rather than for its whole lifetime — so a long-running scan does not
// starve writers, at the cost of only weak consistency across mutations
// interleaved with iteration.
package concurrent

import (
	"sync"

	"github.com/mnohosten/bptrees/pkg/longtree"
)

// Tree is a thread-safe wrapper around longtree.Tree.
type Tree[V any] struct {
	mu   sync.RWMutex
	tree *longtree.Tree[V]
}

// New creates an empty, thread-safe tree with the given branching factor.
func New[V any](order int) (*Tree[V], error) {
	inner, err := longtree.New[V](order)
	if err != nil {
		return nil, err
	}
	return &Tree[V]{tree: inner}, nil
}

func (t *Tree[V]) Get(key int64) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Get(key)
}

func (t *Tree[V]) Put(key int64, value V) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Put(key, value)
}

func (t *Tree[V]) ComputeIfAbsent(key int64, compute func() (V, bool)) (V, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.ComputeIfAbsent(key, compute)
}

func (t *Tree[V]) Remove(key int64) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Remove(key)
}

func (t *Tree[V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.Clear()
}

func (t *Tree[V]) GetAll() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.GetAll()
}

func (t *Tree[V]) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Size()
}

func (t *Tree[V]) Height() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Height()
}

func (t *Tree[V]) IsEmpty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.IsEmpty()
}

// Range returns a lock-per-step iterator over [start, end]. Unlike the
// unwrapped tree's iterator, HasNext/Next each take the read lock only for
// their own duration; the lock is not held between steps, so writers can
// interleave with an in-progress scan.
func (t *Tree[V]) Range(start, end int64) (*Iterator[V], error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	inner, err := t.tree.Range(start, end)
	if err != nil {
		return nil, err
	}
	return &Iterator[V]{mu: &t.mu, inner: inner}, nil
}

// Iterator is a per-step-locked forward cursor returned by Tree.Range.
type Iterator[V any] struct {
	mu    *sync.RWMutex
	inner *longtree.Iterator[V]
}

// HasNext reports whether Next would return another entry. It acquires the
// tree's read lock for the duration of the check only.
func (it *Iterator[V]) HasNext() bool {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return it.inner.HasNext()
}

// Next returns the next key/value pair and advances the cursor, acquiring
// the tree's read lock for the duration of the step only.
func (it *Iterator[V]) Next() (int64, V) {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return it.inner.Next()
}
