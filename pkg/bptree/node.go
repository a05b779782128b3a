package bptree

import (
	"golang.org/x/exp/constraints"

	"github.com/mnohosten/bptrees/internal/slots"
)

// node is the shared shape for leaf and internal nodes of the generic
// comparable-key B+-tree. Unlike pkg/longtree's int64-specialized node,
// keys here are any totally ordered K (golang.org/x/exp/constraints.Ordered),
// the price of genericity over the long-keyed variant's tighter []int64
// storage.
type node[K constraints.Ordered] struct {
	isLeaf   bool
	keys     []K
	children []interface{} // leaf: V values; internal: *node[K]
	next     *node[K]
}

func newLeaf[K constraints.Ordered](order int) *node[K] {
	return &node[K]{isLeaf: true, keys: make([]K, 0, order+1), children: make([]interface{}, 0, order+1)}
}

func newInternal[K constraints.Ordered](order int) *node[K] {
	return &node[K]{keys: make([]K, 0, order+1), children: make([]interface{}, 0, order+1)}
}

func (n *node[K]) count() int { return len(n.keys) }

func (n *node[K]) childNode(i int) *node[K] { return n.children[i].(*node[K]) }

func (n *node[K]) insertAt(i int, key K, child interface{}) {
	n.keys = slots.InsertAt(n.keys, i, key)
	n.children = slots.InsertAt(n.children, i, child)
}

func (n *node[K]) append(key K, child interface{}) {
	n.keys = slots.Append(n.keys, key)
	n.children = slots.Append(n.children, child)
}

func (n *node[K]) deleteAt(i int) {
	n.keys = slots.DeleteAt(n.keys, i)
	n.children = slots.DeleteAt(n.children, i)
}

func (n *node[K]) merge(other *node[K]) {
	n.keys = slots.Merge(n.keys, other.keys)
	n.children = slots.Merge(n.children, other.children)
	other.keys = nil
	other.children = nil
	other.next = nil
}

func keyCmp[K constraints.Ordered](k, key K) int {
	switch {
	case k < key:
		return -1
	case k > key:
		return 1
	default:
		return 0
	}
}

func (n *node[K]) leafSearch(key K) (index int, exact bool) {
	return slots.SearchFunc(n.keys, func(k K) int { return keyCmp(k, key) })
}

func (n *node[K]) descendIndex(key K) int {
	i, found := slots.SearchFunc(n.keys, func(k K) int { return keyCmp(k, key) })
	if found {
		return i
	}
	i = slots.Clamp(i, n.count())
	if n.count() > 0 && n.keys[i] > key && i > 0 {
		i--
	}
	return i
}
