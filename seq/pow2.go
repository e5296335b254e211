package seq

import (
	"fmt"
	"math/bits"
)

// CeilToPowerOf2 rounds v up to the nearest power of two. Values <= 1 give 1.
//
// If the result does not fit in T the shift wraps the way Go shifts do: signed
// types produce a negative number (the sign bit) and unsigned types produce 0.
// For int64 that happens above 1<<62; use CeilToPowerOf2Checked to detect it.
func CeilToPowerOf2[T Integer](v T) T {
	if v <= 1 {
		return 1
	}
	return T(1) << bits.Len64(uint64(v-1))
}

// CeilToPowerOf2Checked is CeilToPowerOf2 that reports overflow as ErrPow2Overflow.
func CeilToPowerOf2Checked[T Integer](v T) (T, error) {
	r := CeilToPowerOf2(v)
	if r < v {
		return 0, fmt.Errorf("ceil %d to power of 2: %w", v, ErrPow2Overflow)
	}
	return r, nil
}
