package seq

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Array[int, int] {
	return FromSlice([]int{10, 20, 30, 40, 50})
}

// recoverString runs f and returns the formatted panic value, or "" if f returned normally.
func recoverString(f func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	f()
	return ""
}

func TestView_ReportsBounds(t *testing.T) {
	arr := sample()
	cases := []struct {
		name       string
		start, end int
	}{
		{"whole", 0, 5},
		{"inner", 1, 4},
		{"empty_at_start", 0, 0},
		{"empty_at_end", 5, 5},
		{"single", 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewView[int, int](arr, NewBounds(tc.start, tc.end))
			assert.Equal(t, tc.start, v.StartIndex())
			assert.Equal(t, tc.end, v.EndIndex())
			assert.Equal(t, tc.end-tc.start, v.Len())
		})
	}
}

func TestView_ElementsMatchBase(t *testing.T) {
	arr := sample()
	v := NewView[int, int](arr, NewBounds(1, 4))

	require.Equal(t, 1, v.StartIndex())
	require.Equal(t, 4, v.EndIndex())
	for i := v.StartIndex(); i < v.EndIndex(); i++ {
		assert.Equal(t, arr.At(i), v.At(i), "index %d", i)
	}
	assert.Equal(t, []int{20, 30, 40}, Collect[int, int](v))
}

func TestView_SliceSingleElement(t *testing.T) {
	v := NewView[int, int](sample(), NewBounds(1, 4))
	w := v.Slice(NewBounds(2, 3))

	assert.Equal(t, 2, w.StartIndex())
	assert.Equal(t, 3, w.EndIndex())
	assert.Equal(t, 30, w.At(2))
	assert.Equal(t, []int{30}, Collect[int, int](w))
}

func TestView_SliceFlattens(t *testing.T) {
	arr := sample()
	v := NewView[int, int](arr, NewBounds(0, 5))
	w := v.Slice(NewBounds(1, 4)).Slice(NewBounds(2, 4))
	direct := NewView[int, int](arr, NewBounds(2, 4))

	assert.Equal(t, direct, w)
	_, nested := w.Base().(View[int, int])
	assert.False(t, nested, "slice of a view must target the original base")
	assert.Equal(t, Container[int, int](arr), w.Base())

	// Building a view on top of a view collapses too, by value or by pointer.
	assert.Equal(t, direct, NewView[int, int](v, NewBounds(2, 4)))
	assert.Equal(t, direct, NewView[int, int](&v, NewBounds(2, 4)))
}

func TestView_OutOfWindowDelegatesToBase(t *testing.T) {
	arr := sample()
	v := NewView[int, int](arr, NewBounds(1, 4))

	// Inside the base but outside the window: no extra check.
	assert.Equal(t, 10, v.At(0))
	assert.Equal(t, 50, v.At(4))

	// Outside the base: same panic as the base itself.
	for _, i := range []int{-1, 5, 7} {
		want := recoverString(func() { arr.At(i) })
		require.NotEmpty(t, want, "base must panic at %d", i)
		assert.Equal(t, want, recoverString(func() { v.At(i) }), "index %d", i)
	}
}

func TestView_DeferredValidation(t *testing.T) {
	arr := sample()

	// Construction never checks.
	v := NewView[int, int](arr, NewBounds(3, 9))
	assert.Equal(t, 3, v.StartIndex())
	assert.Equal(t, 9, v.EndIndex())

	err := v.Validate()
	assert.ErrorIs(t, err, ErrOutOfBounds)

	err = NewView[int, int](arr, NewBounds(4, 2)).Validate()
	assert.ErrorIs(t, err, ErrInvalidBounds)

	assert.ErrorIs(t, View[int, int]{}.Validate(), ErrOutOfBounds)
	assert.NoError(t, NewView[int, int](arr, NewBounds(5, 5)).Validate())
	assert.NoError(t, NewView[int, int](arr, NewBounds(0, 5)).Validate())
}

func TestView_OffsetBase(t *testing.T) {
	arr := ArrayAt[uint16](100, []string{"a", "b", "c", "d"})
	require.Equal(t, uint16(100), arr.StartIndex())
	require.Equal(t, uint16(104), arr.EndIndex())

	v := arr.Slice(NewBounds[uint16](101, 103))
	assert.Equal(t, []string{"b", "c"}, Collect[uint16, string](v))
	assert.NoError(t, v.Validate())
	assert.ErrorIs(t, arr.Slice(NewBounds[uint16](99, 101)).Validate(), ErrOutOfBounds)

	// below the start the subtraction wraps, which still panics like the base
	assert.NotEmpty(t, recoverString(func() { v.At(99) }))
}

func TestView_Iteration(t *testing.T) {
	v := sample().Slice(NewBounds(1, 4))

	var idx []int
	var vals []int
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	assert.Equal(t, []int{1, 2, 3}, idx)
	assert.Equal(t, []int{20, 30, 40}, vals)

	var first []int
	for x := range v.Values() {
		first = append(first, x)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int{20, 30}, first)
}

// Slicing semantics must hold for any Container, not only Array.
type squares struct{ n int }

func (s squares) StartIndex() int { return 0 }
func (s squares) EndIndex() int   { return s.n }
func (s squares) At(i int) int {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("squares: index %d out of [0,%d)", i, s.n))
	}
	return i * i
}

func TestView_CustomContainer(t *testing.T) {
	sq := squares{n: 10}
	v := NewView[int, int](sq, NewBounds(2, 8)).Slice(NewBounds(3, 6))

	assert.Equal(t, []int{9, 16, 25}, Collect[int, int](v))
	assert.Equal(t, "View[3,6)", v.String())
	assert.Equal(t,
		recoverString(func() { sq.At(10) }),
		recoverString(func() { v.At(10) }),
	)
}
