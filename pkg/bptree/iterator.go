package bptree

import "golang.org/x/exp/constraints"

// Iterator is a forward cursor over a contiguous key range. The generic
// tree's range contract is exclusive of its upper end and accepts nil
// bounds: a nil start begins at the first leaf, a nil end runs to the last
// key (see pkg/longtree for the int64 specialization's inclusive-both-ends
// contract — the two deliberately diverge here).
type Iterator[K constraints.Ordered, V any] struct {
	leaf   *node[K]
	ix     int
	end    *K
	hasEnd bool
}

// Range returns an iterator over keys in [start, end). A nil start begins
// at the first key in the tree; a nil end runs to the last key. It fails
// with ErrInvalidRange if both bounds are given and start > end.
func (t *Tree[K, V]) Range(start, end *K) (*Iterator[K, V], error) {
	if start != nil && end != nil && *start > *end {
		return nil, ErrInvalidRange
	}

	var n *node[K]
	var ix int
	if start == nil {
		n = t.level0
		ix = 0
	} else {
		n = t.root
		for !n.isLeaf {
			n = n.childNode(n.descendIndex(*start))
		}
		ix, _ = n.leafSearch(*start)
	}

	return &Iterator[K, V]{leaf: n, ix: ix, end: end, hasEnd: end != nil}, nil
}

// HasNext reports whether Next would return another entry.
func (it *Iterator[K, V]) HasNext() bool {
	it.skipExhaustedLeaves()
	if it.leaf == nil || it.ix >= it.leaf.count() {
		return false
	}
	if !it.hasEnd {
		return true
	}
	return it.leaf.keys[it.ix] < *it.end
}

// Next returns the next key/value pair in the range and advances the
// cursor. Calling Next when HasNext is false is a programming error and
// panics, matching the teacher's bounds-checked slice access style.
func (it *Iterator[K, V]) Next() (K, V) {
	key := it.leaf.keys[it.ix]
	value := it.leaf.children[it.ix].(V)
	it.ix++
	return key, value
}

// skipExhaustedLeaves advances past any leaf whose live range has been
// fully consumed, including transiently-empty leaves (count == 0), which
// cannot occur after a completed mutation but are tolerated here anyway.
func (it *Iterator[K, V]) skipExhaustedLeaves() {
	for it.leaf != nil && it.ix >= it.leaf.count() {
		it.leaf = it.leaf.next
		it.ix = 0
	}
}
