package seq

import "fmt"

// Bounds is a half-open index range [Start, End).
type Bounds[I Integer] struct {
	Start I
	End   I
}

var _ Range[int] = Bounds[int]{}

// NewBounds returns [start, end). It does not check start <= end.
func NewBounds[I Integer](start, end I) Bounds[I] {
	return Bounds[I]{Start: start, End: end}
}

// IsValid reports whether Start <= End.
func (b Bounds[I]) IsValid() bool {
	return b.Start <= b.End
}

// Contains reports whether Start <= i < End.
func (b Bounds[I]) Contains(i I) bool {
	return b.Start <= i && i < b.End
}

func (b Bounds[I]) IsEmpty() bool {
	return b.Start >= b.End
}

func (b Bounds[I]) IsNotEmpty() bool {
	return !b.IsEmpty()
}

// IsLowerBounded is always true: a Bounds has a finite start.
func (b Bounds[I]) IsLowerBounded() bool {
	return true
}

// IsUpperBounded is always true: a Bounds has a finite end.
func (b Bounds[I]) IsUpperBounded() bool {
	return true
}

// Len returns the number of indices in b, or 0 if b is empty or invalid.
func (b Bounds[I]) Len() int {
	if b.IsEmpty() {
		return 0
	}
	return int(b.End - b.Start)
}

// Within reports whether b is a valid range lying inside outer.
// An empty b is within outer as long as its start is inside [outer.Start, outer.End].
func (b Bounds[I]) Within(outer Bounds[I]) bool {
	return b.IsValid() && outer.Start <= b.Start && b.End <= outer.End
}

// String formats b in interval notation, e.g. "[1,4)".
func (b Bounds[I]) String() string {
	return fmt.Sprintf("[%d,%d)", b.Start, b.End)
}
