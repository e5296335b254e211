package slice

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vipcxj/rangeview/seq"
)

// IntRange is an integer interval as written on the command line. Either side
// may be open, closed or unbounded.
type IntRange struct {
	Min          int
	MinInclude   bool
	Max          int
	MaxInclude   bool
	MinUnbounded bool // true 表示左端为 -inf
	MaxUnbounded bool // true 表示右端为 +inf
}

var _ seq.Range[int] = IntRange{}

// NewIntRange parses value and returns an IntRange.
//
// Supported formats:
//   - N
//   - =N
//   - >N, >=N, <N, <=N
//   - (min,max), (min,max], [min,max), [min,max]
//   - ( ,max), (min, ), ( ,max] etc.
//
// Spaces are ignored. An unbounded side must be open: "[,3)" is rejected.
// An empty value is an error.
func NewIntRange(value string) (IntRange, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return IntRange{}, fmt.Errorf("empty range")
	}

	// prefix operators, longest first
	for _, op := range []string{">=", "<=", "=", ">", "<"} {
		if !strings.HasPrefix(s, op) {
			continue
		}
		n, err := parseInt(s[len(op):])
		if err != nil {
			return IntRange{}, fmt.Errorf("invalid %sN: %w", op, err)
		}
		switch op {
		case "=":
			return NewSingleValueIntRange(n), nil
		case ">=":
			return NewGreaterOrEqualThanIntRange(n), nil
		case ">":
			return IntRange{Min: n, MaxUnbounded: true}, nil
		case "<=":
			return NewLessOrEqualThanIntRange(n), nil
		default:
			return IntRange{Max: n, MinUnbounded: true}, nil
		}
	}

	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		return parseInterval(value, s)
	}

	if n, err := strconv.Atoi(s); err == nil {
		return NewSingleValueIntRange(n), nil
	}
	return IntRange{}, fmt.Errorf("unrecognized range format: %s", value)
}

func parseInt(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty integer")
	}
	return strconv.Atoi(tok)
}

func parseInterval(value, s string) (IntRange, error) {
	var r IntRange
	leftInclusive := s[0] == '['
	rightInclusive := s[len(s)-1] == ']'
	parts := strings.SplitN(s[1:len(s)-1], ",", 2)
	if len(parts) != 2 {
		return IntRange{}, fmt.Errorf("invalid interval syntax: %s", value)
	}
	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])

	if left == "" {
		if leftInclusive {
			return IntRange{}, fmt.Errorf("infinite side must be open on left: %s", value)
		}
		r.MinUnbounded = true
	} else {
		n, err := strconv.Atoi(left)
		if err != nil {
			return IntRange{}, fmt.Errorf("invalid left integer: %w", err)
		}
		r.Min = n
		r.MinInclude = leftInclusive
	}

	if right == "" {
		if rightInclusive {
			return IntRange{}, fmt.Errorf("infinite side must be open on right: %s", value)
		}
		r.MaxUnbounded = true
	} else {
		n, err := strconv.Atoi(right)
		if err != nil {
			return IntRange{}, fmt.Errorf("invalid right integer: %w", err)
		}
		r.Max = n
		r.MaxInclude = rightInclusive
	}

	if !r.MinUnbounded && !r.MaxUnbounded {
		if r.Min > r.Max {
			return IntRange{}, fmt.Errorf("empty interval: min > max")
		}
		if r.Min == r.Max && (!r.MinInclude || !r.MaxInclude) {
			// (N,N), (N,N], [N,N) 都是空集
			return IntRange{}, fmt.Errorf("empty interval for equal bounds but not both inclusive")
		}
	}
	return r, nil
}

func NewUnboundedIntRange() IntRange {
	return IntRange{MinUnbounded: true, MaxUnbounded: true}
}

func NewSingleValueIntRange(n int) IntRange {
	return NewInclusiveIntRange(n, n)
}

func NewGreaterOrEqualThanIntRange(n int) IntRange {
	return IntRange{Min: n, MinInclude: true, MaxUnbounded: true}
}

func NewLessOrEqualThanIntRange(n int) IntRange {
	return IntRange{Max: n, MaxInclude: true, MinUnbounded: true}
}

func NewInclusiveIntRange(min int, max int) IntRange {
	return IntRange{Min: min, MinInclude: true, Max: max, MaxInclude: true}
}

// IsValid reports whether r contains at least one integer and does not
// include an infinite end.
func (r IntRange) IsValid() bool {
	if r.MinUnbounded && r.MinInclude {
		return false
	}
	if r.MaxUnbounded && r.MaxInclude {
		return false
	}
	// (MaxInt, ...) 与 (..., MinInt) 不含任何整数
	if !r.MinUnbounded && !r.MinInclude && r.Min == math.MaxInt {
		return false
	}
	if !r.MaxUnbounded && !r.MaxInclude && r.Max == math.MinInt {
		return false
	}
	if r.MinUnbounded || r.MaxUnbounded {
		return true
	}
	lo, _ := r.Lowest()
	hi, _ := r.Highest()
	return lo <= hi
}

func (r IntRange) IsNotEmpty() bool {
	return r.IsValid()
}

// Contains checks whether n is included in r. An invalid range contains nothing.
func (r IntRange) Contains(n int) bool {
	if !r.IsValid() {
		return false
	}
	if lo, ok := r.Lowest(); ok && n < lo {
		return false
	}
	if hi, ok := r.Highest(); ok && n > hi {
		return false
	}
	return true
}

// Lowest returns the lowest integer included in r and whether r is bounded below.
// An exclusive MaxInt minimum saturates at MaxInt; such a range is not valid.
func (r IntRange) Lowest() (int, bool) {
	if r.MinUnbounded {
		return 0, false
	}
	if r.MinInclude || r.Min == math.MaxInt {
		return r.Min, true
	}
	return r.Min + 1, true
}

// Highest returns the highest integer included in r and whether r is bounded above.
// An exclusive MinInt maximum saturates at MinInt; such a range is not valid.
func (r IntRange) Highest() (int, bool) {
	if r.MaxUnbounded {
		return 0, false
	}
	if r.MaxInclude || r.Max == math.MinInt {
		return r.Max, true
	}
	return r.Max - 1, true
}

// HasIntesect reports whether some integer lies in both r and other.
func (r IntRange) HasIntesect(other IntRange) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	// r 在 other 左侧
	if rMax, ok := r.Highest(); ok {
		if otherMin, ok := other.Lowest(); ok && rMax < otherMin {
			return false
		}
	}
	// r 在 other 右侧
	if rMin, ok := r.Lowest(); ok {
		if otherMax, ok := other.Highest(); ok && rMin > otherMax {
			return false
		}
	}
	return true
}

// Substract returns the parts of r not covered by other, in ascending order.
func (r IntRange) Substract(other IntRange) []IntRange {
	if !r.HasIntesect(other) {
		return []IntRange{r}
	}
	var results []IntRange
	if !other.MinUnbounded {
		left := r
		left.Max, left.MaxInclude, left.MaxUnbounded = other.Min, !other.MinInclude, false
		if left.IsValid() {
			results = append(results, left)
		}
	}
	if !other.MaxUnbounded {
		right := r
		right.Min, right.MinInclude, right.MinUnbounded = other.Max, !other.MaxInclude, false
		if right.IsValid() {
			results = append(results, right)
		}
	}
	return results
}

// TryMyBestToClosedInterval rewrites r with inclusive finite ends, e.g. (1,5) -> [2,4].
func (r IntRange) TryMyBestToClosedInterval() IntRange {
	lowest, ok1 := r.Lowest()
	highest, ok2 := r.Highest()
	switch {
	case ok1 && ok2:
		return NewInclusiveIntRange(lowest, highest)
	case ok1:
		return NewGreaterOrEqualThanIntRange(lowest)
	case ok2:
		return NewLessOrEqualThanIntRange(highest)
	default:
		return NewUnboundedIntRange()
	}
}

// Resolve turns r into half-open view bounds. An unbounded side takes the
// matching end of current, so ">=2" on a view [1,4) gives [2,4). The result is
// never inverted: a range holding no integer resolves to an empty window.
// Resolve does not clamp to current; the caller validates the resulting view.
// A range including MaxInt fails with ErrOutOfBounds, since no window can end after it.
func (r IntRange) Resolve(current seq.Bounds[int]) (seq.Bounds[int], error) {
	b := current
	if lo, ok := r.Lowest(); ok {
		b.Start = lo
	}
	if hi, ok := r.Highest(); ok {
		if hi == math.MaxInt {
			return seq.Bounds[int]{}, fmt.Errorf("range %s includes %d, which no window can hold: %w", r.ToParseableString(), hi, seq.ErrOutOfBounds)
		}
		b.End = hi + 1
	}
	if b.End < b.Start {
		b.End = b.Start
	}
	return b, nil
}

func (r IntRange) IsLowerBounded() bool {
	return !r.MinUnbounded
}

func (r IntRange) IsUpperBounded() bool {
	return !r.MaxUnbounded
}

// format returns r in the notation NewIntRange reads. With showInfty unbounded
// interval sides are written as "-∞"/"∞", otherwise they are left empty.
func (r IntRange) format(showInfty bool) string {
	if !r.MinUnbounded && !r.MaxUnbounded && r.Min == r.Max && r.MinInclude && r.MaxInclude {
		return strconv.Itoa(r.Min)
	}
	if r.MinUnbounded && !r.MaxUnbounded {
		if r.MaxInclude {
			return fmt.Sprintf("<=%d", r.Max)
		}
		return fmt.Sprintf("<%d", r.Max)
	}
	if r.MaxUnbounded && !r.MinUnbounded {
		if r.MinInclude {
			return fmt.Sprintf(">=%d", r.Min)
		}
		return fmt.Sprintf(">%d", r.Min)
	}

	leftB, rightB := "(", ")"
	if r.MinInclude {
		leftB = "["
	}
	if r.MaxInclude {
		rightB = "]"
	}
	var leftStr, rightStr string
	if r.MinUnbounded {
		if showInfty {
			leftStr = "-∞"
		}
	} else {
		leftStr = strconv.Itoa(r.Min)
	}
	if r.MaxUnbounded {
		if showInfty {
			rightStr = "∞"
		}
	} else {
		rightStr = strconv.Itoa(r.Max)
	}
	return fmt.Sprintf("%s%s,%s%s", leftB, leftStr, rightStr, rightB)
}

// String implements fmt.Stringer (unbounded sides shown with ∞).
func (r IntRange) String() string {
	return r.format(true)
}

// ToParseableString returns a string NewIntRange parses back to r.
func (r IntRange) ToParseableString() string {
	return r.format(false)
}
