package longtree

import "errors"

var (
	// ErrInvalidOrder is returned by New when order is below the minimum
	// branching factor of 3.
	ErrInvalidOrder = errors.New("longtree: order must be at least 3")

	// ErrNilSupplier is returned by ComputeIfAbsent when the supplier
	// function itself is nil.
	ErrNilSupplier = errors.New("longtree: compute function must not be nil")

	// ErrSupplierDeclined is returned by ComputeIfAbsent when the supplier
	// runs but declines to provide a value (returns ok == false).
	ErrSupplierDeclined = errors.New("longtree: compute function declined to supply a value")

	// ErrInvalidRange is returned by Range when start > end.
	ErrInvalidRange = errors.New("longtree: range start must not exceed end")
)
