package rtree

import "github.com/mnohosten/bptrees/internal/slots"

// node is the shared shape for leaf and internal R-tree nodes: a leaf's
// children are stored values, an internal node's children are *node
// pointers. Unlike the linear B+-tree node, an R-tree node carries a
// back-reference to its parent so that a point insert can refresh
// ancestor boxes without re-descending from the root.
type node[K comparable, V any] struct {
	isLeaf   bool
	boxes    []RBox
	children []interface{} // leaf: V values; internal: *node[K, V]
	parent   *node[K, V]
}

func newLeaf[K comparable, V any](order int) *node[K, V] {
	return &node[K, V]{isLeaf: true, boxes: make([]RBox, 0, order+1), children: make([]interface{}, 0, order+1)}
}

func newInternal[K comparable, V any](order int) *node[K, V] {
	return &node[K, V]{boxes: make([]RBox, 0, order+1), children: make([]interface{}, 0, order+1)}
}

func (n *node[K, V]) count() int { return len(n.boxes) }

func (n *node[K, V]) childNode(i int) *node[K, V] { return n.children[i].(*node[K, V]) }

func (n *node[K, V]) valueAt(i int) V { return n.children[i].(V) }

func (n *node[K, V]) append(box RBox, child interface{}) {
	n.boxes = slots.Append(n.boxes, box)
	n.children = slots.Append(n.children, child)
}

func (n *node[K, V]) insertAt(i int, box RBox, child interface{}) {
	n.boxes = slots.InsertAt(n.boxes, i, box)
	n.children = slots.InsertAt(n.children, i, child)
}

func (n *node[K, V]) deleteAt(i int) {
	n.boxes = slots.DeleteAt(n.boxes, i)
	n.children = slots.DeleteAt(n.children, i)
}

// deleteByIdentity removes the slot whose child is identical to target
// (interface equality for a leaf's stored value, pointer equality for an
// internal node's child). It returns an error if target is not found: a
// caller that already located the owning leaf via indexKey but fails to
// find the value there indicates an engine bug, not a caller mistake.
func (n *node[K, V]) deleteByIdentity(target interface{}) error {
	for i, c := range n.children {
		if c == target {
			n.deleteAt(i)
			return nil
		}
	}
	return newInconsistency("deleteByIdentity: value not found in its recorded leaf")
}

func (n *node[K, V]) merge(other *node[K, V]) {
	n.boxes = slots.Merge(n.boxes, other.boxes)
	n.children = slots.Merge(n.children, other.children)
	if !other.isLeaf {
		for _, c := range other.children {
			c.(*node[K, V]).parent = n
		}
	}
	other.boxes = nil
	other.children = nil
	other.parent = nil
}

// getBox returns a freshly allocated box covering every slot. Per RBox's
// contract, Union mutates its argument: the accumulator is seeded with a
// clone of the first slot, then every subsequent slot's box is unioned
// into it.
func (n *node[K, V]) getBox() RBox {
	acc := n.boxes[0].Clone()
	for i := 1; i < n.count(); i++ {
		n.boxes[i].Union(acc)
	}
	return acc
}

// updateBoxes rewrites every slot of an internal node from its child's
// current union box. Leaf slots already hold the exact box of their
// stored value and are never rewritten here.
func (n *node[K, V]) updateBoxes() {
	if n.isLeaf {
		return
	}
	for i := range n.boxes {
		n.boxes[i] = n.childNode(i).getBox()
	}
}

// updateUpward recomputes this node's own slot boxes from its children,
// then repeats for its parent, and so on to the root. Called on the node
// that just absorbed an insert into one of its children (a leaf's
// parent after a value insert, or an internal node after absorbing a
// returned sibling), so that a stale box never survives past the point
// it was introduced.
func (n *node[K, V]) updateUpward() {
	for cur := n; cur != nil; cur = cur.parent {
		cur.updateBoxes()
	}
}
