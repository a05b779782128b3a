package bptree

import "errors"

var (
	// ErrInvalidOrder is returned by New when order is below the minimum
	// branching factor of 3.
	ErrInvalidOrder = errors.New("bptree: order must be at least 3")

	// ErrNilSupplier is returned by ComputeIfAbsent when the supplier
	// function itself is nil.
	ErrNilSupplier = errors.New("bptree: compute function must not be nil")

	// ErrSupplierDeclined is returned by ComputeIfAbsent when the supplier
	// runs but declines to provide a value (returns ok == false).
	ErrSupplierDeclined = errors.New("bptree: compute function declined to supply a value")

	// ErrInvalidRange is returned by Range when both bounds are given and
	// start > end.
	ErrInvalidRange = errors.New("bptree: range start must not exceed end")
)
