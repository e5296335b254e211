package seq

import "iter"

// Container is a finite ordered sequence addressed by an integer index.
// Valid indices are [StartIndex(), EndIndex()); At may panic for any other index.
type Container[I Integer, T any] interface {
	StartIndex() I
	EndIndex() I
	At(i I) T
}

// Sliceable is a Container that can hand out views of itself.
type Sliceable[I Integer, T any] interface {
	Container[I, T]
	Slice(b Bounds[I]) View[I, T]
}

// BoundsOf returns the domain of c.
func BoundsOf[I Integer, T any](c Container[I, T]) Bounds[I] {
	return Bounds[I]{Start: c.StartIndex(), End: c.EndIndex()}
}

// All iterates over the index/element pairs of c in index order.
func All[I Integer, T any](c Container[I, T]) iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for i, end := c.StartIndex(), c.EndIndex(); i < end; i++ {
			if !yield(i, c.At(i)) {
				return
			}
		}
	}
}

// Values iterates over the elements of c in index order.
func Values[I Integer, T any](c Container[I, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range All(c) {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect copies the elements of c into a new slice.
func Collect[I Integer, T any](c Container[I, T]) []T {
	out := make([]T, 0, BoundsOf(c).Len())
	for v := range Values(c) {
		out = append(out, v)
	}
	return out
}

// Array is a Container backed by a Go slice whose first element sits at index Start.
type Array[I Integer, T any] struct {
	start I
	items []T
}

var _ Sliceable[int, int] = Array[int, int]{}

// FromSlice wraps items with indices starting at zero. The slice is not copied.
func FromSlice[T any](items []T) Array[int, T] {
	return Array[int, T]{items: items}
}

// ArrayAt wraps items with the first element at index start.
func ArrayAt[I Integer, T any](start I, items []T) Array[I, T] {
	return Array[I, T]{start: start, items: items}
}

func (a Array[I, T]) StartIndex() I { return a.start }

func (a Array[I, T]) EndIndex() I { return a.start + I(len(a.items)) }

// At returns the element at index i. Indices outside the array panic with the
// runtime's index out of range error.
func (a Array[I, T]) At(i I) T {
	return a.items[i-a.start]
}

func (a Array[I, T]) Len() int { return len(a.items) }

// Slice returns a view of a restricted to b.
func (a Array[I, T]) Slice(b Bounds[I]) View[I, T] {
	return NewView[I, T](a, b)
}
