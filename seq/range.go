package seq

// Integer is the set of index types a Container may use.
// 使用 ~ 前缀以允许基于这些底层类型的自定义类型也满足约束。
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Range is a set of integers described by its ends. Bounds and the command
// line interval types implement it; consumers such as a position filter
// accept any Range.
type Range[T Integer] interface {

	// Contains 判断 v 是否在区间内（闭/开取决具体实现）
	Contains(v T) bool
	IsNotEmpty() bool
	IsLowerBounded() bool
	IsUpperBounded() bool
}
