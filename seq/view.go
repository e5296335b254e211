package seq

import (
	"fmt"
	"iter"
)

// View is a read-only window [Start, End) into a base Container.
//
// A View holds the base by interface value and reads through it on every
// access; it never copies elements. The zero View has no base and must not be
// read.
type View[I Integer, T any] struct {
	base   Container[I, T]
	bounds Bounds[I]
}

var _ Sliceable[int, int] = View[int, int]{}

// NewView returns a view of base restricted to bounds. The bounds are not
// checked against the base. If base is itself a View the new view targets that
// view's base, so views never stack.
func NewView[I Integer, T any](base Container[I, T], bounds Bounds[I]) View[I, T] {
	switch v := base.(type) {
	case View[I, T]:
		base = v.base
	case *View[I, T]:
		if v != nil {
			base = v.base
		}
	}
	return View[I, T]{base: base, bounds: bounds}
}

func (v View[I, T]) StartIndex() I { return v.bounds.Start }

func (v View[I, T]) EndIndex() I { return v.bounds.End }

// At returns base.At(i) without checking i against the view's bounds.
func (v View[I, T]) At(i I) T {
	return v.base.At(i)
}

// Slice returns a view over the same base with bounds b.
func (v View[I, T]) Slice(b Bounds[I]) View[I, T] {
	if debugChecks && !b.Within(v.bounds) {
		panic(fmt.Errorf("slice %v of view %v: %w", b, v.bounds, ErrNotSubrange))
	}
	return View[I, T]{base: v.base, bounds: b}
}

// Base returns the container the view reads from.
func (v View[I, T]) Base() Container[I, T] { return v.base }

func (v View[I, T]) Bounds() Bounds[I] { return v.bounds }

func (v View[I, T]) Len() int { return v.bounds.Len() }

// Validate checks the view's bounds against the current domain of its base.
func (v View[I, T]) Validate() error {
	if !v.bounds.IsValid() {
		return fmt.Errorf("view %v: %w", v.bounds, ErrInvalidBounds)
	}
	if v.base == nil {
		return fmt.Errorf("view %v has no base: %w", v.bounds, ErrOutOfBounds)
	}
	domain := BoundsOf(v.base)
	if !v.bounds.Within(domain) {
		return fmt.Errorf("view %v outside %v: %w", v.bounds, domain, ErrOutOfBounds)
	}
	return nil
}

func (v View[I, T]) All() iter.Seq2[I, T] { return All[I, T](v) }

func (v View[I, T]) Values() iter.Seq[T] { return Values[I, T](v) }

func (v View[I, T]) String() string {
	return fmt.Sprintf("View%v", v.bounds)
}
