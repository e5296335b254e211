// Package seq provides read-only views over ordered containers.
//
// A Container exposes elements by an integer index between StartIndex
// (inclusive) and EndIndex (exclusive). A View is a window [start, end) into
// such a container that copies nothing: every read goes through the base
// container, so the cost of At is the cost of the base's own indexed access.
//
// Views do not validate their bounds when they are built. An index outside the
// base's domain fails the same way it would on the base itself (for Array, the
// runtime index out of range panic). Callers that want an eager check can use
// View.Validate, and builds tagged rangeview_debug additionally assert in
// View.Slice that the new bounds lie inside the current ones.
//
// Re-slicing a View never nests: the result always targets the original base.
//
//	arr := seq.FromSlice([]int{10, 20, 30, 40, 50})
//	v := seq.NewView[int, int](arr, seq.NewBounds(1, 4)) // 20, 30, 40
//	w := v.Slice(seq.NewBounds(2, 3))                    // 30
package seq
