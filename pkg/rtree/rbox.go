package rtree

// Relation describes how one RBox relates to another as tested by
// Intersect.
type Relation int

const (
	// NoCollision means the two boxes share no area/point.
	NoCollision Relation = iota
	// Intersects means the two boxes overlap but neither covers the other
	// entirely.
	Intersects
	// Contains means the receiver fully covers the argument.
	Contains
)

// RBox is a user-supplied bounding box. Implementations must be safe to
// use as map-free, side-effect-free values except where this contract
// explicitly calls for mutation (Union).
type RBox interface {
	// CompareTo returns a total order over boxes, used by the tree's split
	// heuristic. It need not (and generally cannot) reflect spatial
	// containment, only a stable ordering.
	CompareTo(other RBox) int

	// Clone returns an independent copy of the box.
	Clone() RBox

	// Union mutates other in place so that it becomes the smallest box
	// covering both the receiver and the original value of other. The
	// receiver is left unchanged. This direction is intentional: callers
	// fold a node's boxes into a running accumulator by calling
	// box.Union(accumulator) for each box in turn.
	Union(other RBox)

	// Intersect reports how the argument relates to the receiver:
	// Contains if the receiver fully covers other, Intersects if they
	// overlap without full coverage, NoCollision otherwise.
	Intersect(other RBox) Relation
}
