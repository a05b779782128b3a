package longtree

import "github.com/mnohosten/bptrees/internal/slots"

// node is the shared shape for both leaf and internal nodes of the
// 64-bit-integer-keyed B+-tree. isLeaf tags which flavor a node is; leaves
// store values in children and chain forward via next, internal nodes
// store child node pointers in children. Keys are kept in a tight []int64
// slice rather than []interface{}, the "tighter key storage" the
// long-keyed specialization buys over the generic variant.
type node struct {
	isLeaf   bool
	keys     []int64
	children []interface{} // leaf: V values; internal: *node
	next     *node         // leaf-only forward chain link
}

func newLeaf(order int) *node {
	return &node{
		isLeaf:   true,
		keys:     make([]int64, 0, order+1),
		children: make([]interface{}, 0, order+1),
	}
}

func newInternal(order int) *node {
	return &node{
		keys:     make([]int64, 0, order+1),
		children: make([]interface{}, 0, order+1),
	}
}

func (n *node) count() int { return len(n.keys) }

func (n *node) childNode(i int) *node { return n.children[i].(*node) }

func (n *node) insertAt(i int, key int64, child interface{}) {
	n.keys = slots.InsertAt(n.keys, i, key)
	n.children = slots.InsertAt(n.children, i, child)
}

func (n *node) append(key int64, child interface{}) {
	n.keys = slots.Append(n.keys, key)
	n.children = slots.Append(n.children, child)
}

func (n *node) deleteAt(i int) {
	n.keys = slots.DeleteAt(n.keys, i)
	n.children = slots.DeleteAt(n.children, i)
}

// merge appends other's live slots onto n and clears other. If both are
// leaves, the caller is responsible for splicing the forward chain.
func (n *node) merge(other *node) {
	n.keys = slots.Merge(n.keys, other.keys)
	n.children = slots.Merge(n.children, other.children)
	other.keys = nil
	other.children = nil
	other.next = nil
}

func keyCmp(k, key int64) int {
	switch {
	case k < key:
		return -1
	case k > key:
		return 1
	default:
		return 0
	}
}

// leafSearch returns the exact index of key if present, or the index key
// should be inserted at otherwise. No clamp/step-back is needed here: a
// miss's insertion point is already the correct place to insert-at or
// append.
func (n *node) leafSearch(key int64) (index int, exact bool) {
	i, found := slots.SearchFunc(n.keys, func(k int64) int { return keyCmp(k, key) })
	return i, found
}

// descendIndex locates the child slot whose key-range covers key: a binary
// search that maps a miss to its insertion point, clamps to [0, count-1],
// and steps one slot left whenever the located slot's key strictly exceeds
// key. That left-step is essential — without it, a key smaller than the
// current minimum descends into the wrong subtree and breaks the "slot key
// = subtree minimum" invariant.
func (n *node) descendIndex(key int64) int {
	i, found := slots.SearchFunc(n.keys, func(k int64) int { return keyCmp(k, key) })
	if found {
		return i
	}
	i = slots.Clamp(i, n.count())
	if n.count() > 0 && n.keys[i] > key && i > 0 {
		i--
	}
	return i
}
