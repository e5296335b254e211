package seq

import "weak"

// Unowned holds a reference to *T without keeping the referent alive.
//
// It is the value-type box for places where a plain pointer would extend the
// referent's lifetime, such as a struct field or map value that should not own
// what it points to. Once the referent is garbage collected Value returns nil.
type Unowned[T any] struct {
	ptr weak.Pointer[T]
}

// NewUnowned wraps p. A nil p yields an Unowned whose Value is always nil.
func NewUnowned[T any](p *T) Unowned[T] {
	return Unowned[T]{ptr: weak.Make(p)}
}

// Value returns the referent, or nil if it has been collected.
func (u Unowned[T]) Value() *T {
	return u.ptr.Value()
}

func (u Unowned[T]) Get() (*T, bool) {
	p := u.ptr.Value()
	return p, p != nil
}

// MustValue returns the referent and panics with ErrDangling if it is gone.
func (u Unowned[T]) MustValue() *T {
	p := u.ptr.Value()
	if p == nil {
		panic(ErrDangling)
	}
	return p
}
