// Package slots implements the fixed-capacity shift primitives shared by
// every node flavor in this module: the linear B+-tree's leaf and internal
// nodes, the generic B+-tree's nodes, and the R-tree's box-keyed nodes.
//
// All three node flavors store a live count of slots in a pair of parallel
// slices (keys/boxes and children) and shift slots around on insert,
// delete, and merge. Rather than re-deriving that slice surgery per
// package, it lives here once, on top of golang.org/x/exp/slices.
package slots

import "golang.org/x/exp/slices"

// InsertAt right-shifts s[i:] by one and writes v at i, growing s by one
// element. i must be in [0, len(s)].
func InsertAt[T any](s []T, i int, v T) []T {
	return slices.Insert(s, i, v)
}

// DeleteAt left-shifts s[i+1:] over s[i] and shrinks s by one element.
func DeleteAt[T any](s []T, i int) []T {
	return slices.Delete(s, i, i+1)
}

// Append grows s by one element holding v.
func Append[T any](s []T, v T) []T {
	return append(s, v)
}

// Merge appends every element of other onto s.
func Merge[T any](s, other []T) []T {
	return append(s, other...)
}

// SearchFunc returns the index of the first element for which cmp(element)
// is >= 0, and whether that element compares equal (cmp == 0). cmp must be
// monotonically non-decreasing over s, matching the semantics of a binary
// search over a strictly increasing key array.
func SearchFunc[T any](s []T, cmp func(T) int) (index int, found bool) {
	return slices.BinarySearchFunc(s, 0, func(e T, _ int) int { return cmp(e) })
}

// Clamp bounds i to [0, n-1]. A count of zero clamps to 0 (the caller must
// special-case the empty-node case separately; Clamp alone is not enough to
// tell "count==0" apart from "i belongs at slot 0").
func Clamp(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
