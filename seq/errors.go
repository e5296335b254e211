package seq

import "errors"

var (
	// ErrInvalidBounds is returned for bounds whose start is after their end.
	ErrInvalidBounds = errors.New("invalid bounds")
	// ErrOutOfBounds is returned when bounds leave the base container's domain.
	ErrOutOfBounds = errors.New("bounds out of range")
	// ErrNotSubrange reports bounds that are not inside the view being sliced.
	// Debug builds panic with it from View.Slice.
	ErrNotSubrange = errors.New("bounds are not a sub-range of the view")
	// ErrPow2Overflow is returned when the next power of two does not fit the type.
	ErrPow2Overflow = errors.New("power of two overflows")
	// ErrDangling is the panic value of Unowned.MustValue once the referent is gone.
	ErrDangling = errors.New("unowned referent has been collected")
)
