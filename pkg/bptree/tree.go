// Package bptree implements an in-memory B+-tree generic over any totally
// ordered key type K and arbitrary value type V — the generic-key
// specialization of this module's linear B+-tree (see pkg/longtree for the
// tighter-storage int64-keyed variant). Leaves form a singly-linked
// forward chain so that Range and GetAll can walk the tree without
// recursion.
//
// A Tree is not safe for concurrent use.
package bptree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Tree is a B+-tree keyed by any K satisfying constraints.Ordered, holding
// values of type V.
type Tree[K constraints.Ordered, V any] struct {
	root   *node[K]
	level0 *node[K]
	order  int
	height int
	size   int
}

// New creates an empty tree with the given branching factor. order must be
// at least 3.
func New[K constraints.Ordered, V any](order int) (*Tree[K, V], error) {
	if order < 3 {
		return nil, ErrInvalidOrder
	}
	root := newLeaf[K](order)
	return &Tree[K, V]{root: root, level0: root, order: order}, nil
}

func (t *Tree[K, V]) Size() int     { return t.size }
func (t *Tree[K, V]) Height() int   { return t.height }
func (t *Tree[K, V]) IsEmpty() bool { return t.size == 0 }

func (t *Tree[K, V]) Clear() {
	root := newLeaf[K](t.order)
	t.root = root
	t.level0 = root
	t.height = 0
	t.size = 0
}

// Get returns the value stored for key and whether it was present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	var zero V
	n := t.root
	for !n.isLeaf {
		n = n.childNode(n.descendIndex(key))
	}
	i, exact := n.leafSearch(key)
	if !exact {
		return zero, false
	}
	return n.children[i].(V), true
}

// Put inserts or overwrites the value stored for key, returning the value
// it displaced (the zero value of V, false if key was absent).
func (t *Tree[K, V]) Put(key K, value V) (V, bool) {
	displaced, hadOld, sibling := t.insert(t.root, key, value)
	if sibling != nil {
		newRoot := newInternal[K](t.order)
		newRoot.append(t.root.keys[0], t.root)
		newRoot.append(sibling.keys[0], sibling)
		t.root = newRoot
		t.height++
	}
	if !hadOld {
		t.size++
	}
	return displaced, hadOld
}

// ComputeIfAbsent returns the value stored for key if present, without
// calling compute. Otherwise it calls compute; if compute declines
// (returns ok == false), no entry is stored and ErrSupplierDeclined is
// returned. compute must not be nil.
func (t *Tree[K, V]) ComputeIfAbsent(key K, compute func() (V, bool)) (V, error) {
	var zero V
	if compute == nil {
		return zero, ErrNilSupplier
	}
	if v, ok := t.Get(key); ok {
		return v, nil
	}
	v, ok := compute()
	if !ok {
		return zero, ErrSupplierDeclined
	}
	t.Put(key, v)
	return v, nil
}

func (t *Tree[K, V]) insert(n *node[K], key K, value V) (displaced V, hadOld bool, sibling *node[K]) {
	var zero V
	if n.isLeaf {
		i, exact := n.leafSearch(key)
		if exact {
			old := n.children[i].(V)
			n.children[i] = value
			return old, true, nil
		}
		if i == n.count() {
			n.append(key, value)
		} else {
			n.insertAt(i, key, value)
		}
		if n.count() <= t.order {
			return zero, false, nil
		}
		return zero, false, t.splitLeaf(n)
	}

	i := n.descendIndex(key)
	child := n.childNode(i)
	displaced, hadOld, childSibling := t.insert(child, key, value)
	if childSibling != nil {
		n.insertAt(i+1, childSibling.keys[0], childSibling)
		if n.keys[i] != child.keys[0] {
			n.keys[i] = child.keys[0]
		}
		if n.count() > t.order {
			return displaced, hadOld, t.splitInternal(n)
		}
	} else if n.keys[i] != child.keys[0] {
		n.keys[i] = child.keys[0]
	}
	return displaced, hadOld, nil
}

func (t *Tree[K, V]) splitLeaf(n *node[K]) *node[K] {
	pivot := (t.order + 1) / 2
	right := newLeaf[K](t.order)
	right.keys = append(right.keys, n.keys[pivot:]...)
	right.children = append(right.children, n.children[pivot:]...)
	right.next = n.next

	n.keys = n.keys[:pivot]
	n.children = n.children[:pivot]
	n.next = right

	return right
}

func (t *Tree[K, V]) splitInternal(n *node[K]) *node[K] {
	pivot := (t.order + 1) / 2
	right := newInternal[K](t.order)
	right.keys = append(right.keys, n.keys[pivot:]...)
	right.children = append(right.children, n.children[pivot:]...)

	n.keys = n.keys[:pivot]
	n.children = n.children[:pivot]

	return right
}

const minFillDivisor = 2

// Remove deletes key, returning the value removed (the zero value, false
// if key was absent).
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	value, removed := t.remove(t.root, key)
	for !t.root.isLeaf && t.root.count() == 1 {
		t.root = t.root.childNode(0)
		t.height--
	}
	if removed {
		t.size--
	}
	return value, removed
}

func (t *Tree[K, V]) remove(n *node[K], key K) (V, bool) {
	var zero V
	if n.isLeaf {
		i, exact := n.leafSearch(key)
		if !exact {
			return zero, false
		}
		value := n.children[i].(V)
		n.deleteAt(i)
		return value, true
	}

	i := n.descendIndex(key)
	child := n.childNode(i)
	value, removed := t.remove(child, key)
	if !removed {
		return zero, false
	}
	if child.count() > 0 {
		n.keys[i] = child.keys[0]
	}
	t.rebalanceNode(n)
	return value, true
}

// rebalanceNode scans every adjacent pair of children once, from the
// rightmost pair down to the leftmost, merging or redistributing as
// needed — see pkg/longtree.rebalanceNode for the identical algorithm on
// the int64-keyed specialization.
func (t *Tree[K, V]) rebalanceNode(n *node[K]) {
	target := t.order / minFillDivisor
	for i := n.count() - 2; i >= 0; i-- {
		left := n.childNode(i)
		right := n.childNode(i + 1)

		if left.count()+right.count() < t.order {
			next := right.next
			left.merge(right)
			if left.isLeaf {
				left.next = next
			}
			n.deleteAt(i + 1)
			continue
		}

		if left.count() < target {
			for left.count() < target {
				left.append(right.keys[0], right.children[0])
				right.deleteAt(0)
			}
			n.keys[i+1] = right.keys[0]
		}
	}
}

// GetAll returns every value in key order by walking the leaf chain.
func (t *Tree[K, V]) GetAll() []V {
	values := make([]V, 0, t.size)
	for leaf := t.level0; leaf != nil && len(values) < t.size; leaf = leaf.next {
		for _, c := range leaf.children {
			values = append(values, c.(V))
		}
	}
	return values
}

// Dump writes a human-readable rendering of the tree's node structure to w,
// one node per line indented by depth. Intended for debugging, not for
// parsing back.
func (t *Tree[K, V]) Dump(w io.Writer) {
	fmt.Fprintln(w, "bptree:")
	dumpNode(w, t.root, 0)
}

func dumpNode[K constraints.Ordered](w io.Writer, n *node[K], depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	if n.isLeaf {
		fmt.Fprintf(w, "%sleaf: %v\n", indent, n.keys)
		return
	}
	fmt.Fprintf(w, "%sinternal: %v\n", indent, n.keys)
	for _, c := range n.children {
		dumpNode(w, c.(*node[K]), depth+1)
	}
}
