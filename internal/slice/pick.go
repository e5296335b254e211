package slice

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vipcxj/rangeview/seq"
)

// NaturalRangeFilter selects natural numbers (0, 1, 2, ...) that fall inside
// any of its Ranges. An empty filter selects nothing.
type NaturalRangeFilter struct {
	Ranges []IntRange
}

var _ seq.Range[int] = NaturalRangeFilter{}

// NewNaturalRangeFilter parses v. Tokens are separated by '_':
//
//	"all"    -> every natural number
//	"N"      -> a single number
//	"N-M"    -> closed interval [N, M]
//	"N-"     -> >= N
//	"-M"     -> <= M
//
// Numbers must be non-decreasing when read left to right, so "1_3-5_7" is
// accepted and "3_1-4" is not.
func NewNaturalRangeFilter(v string) (NaturalRangeFilter, error) {
	var af NaturalRangeFilter
	v = strings.TrimSpace(v)
	if v == "" {
		return af, nil
	}
	if v == "all" {
		return NewAllNaturalRangeFilter(), nil
	}

	prev := 0
	checkOrder := func(ns ...int) error {
		for _, n := range ns {
			if n < prev {
				return fmt.Errorf("numbers must be non-decreasing: %d < %d", n, prev)
			}
			prev = n
		}
		return nil
	}

	for i, tok := range strings.Split(v, "_") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return NaturalRangeFilter{}, fmt.Errorf("empty token at position %d", i)
		}

		// "-N-" 等价于 all
		if strings.Count(tok, "-") > 1 {
			if tok != "--" && strings.HasPrefix(tok, "-") && strings.HasSuffix(tok, "-") {
				if _, err := parseNaturalNumber(tok[1 : len(tok)-1]); err != nil {
					return NaturalRangeFilter{}, fmt.Errorf("invalid token %q: %w", tok, err)
				}
				return NewAllNaturalRangeFilter(), nil
			}
			return NaturalRangeFilter{}, fmt.Errorf("invalid token %q", tok)
		}

		left, right, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := parseNaturalNumber(tok)
			if err != nil {
				return NaturalRangeFilter{}, fmt.Errorf("invalid token %q: %w", tok, err)
			}
			if err := checkOrder(n); err != nil {
				return NaturalRangeFilter{}, err
			}
			af.Ranges = append(af.Ranges, NewSingleValueIntRange(n))
			continue
		}

		switch {
		case left == "" && right == "":
			return NaturalRangeFilter{}, fmt.Errorf("invalid token %q", tok)
		case left != "" && right != "":
			n1, err := parseNaturalNumber(left)
			if err != nil {
				return NaturalRangeFilter{}, fmt.Errorf("invalid left bound in %q: %w", tok, err)
			}
			n2, err := parseNaturalNumber(right)
			if err != nil {
				return NaturalRangeFilter{}, fmt.Errorf("invalid right bound in %q: %w", tok, err)
			}
			if n1 > n2 {
				return NaturalRangeFilter{}, fmt.Errorf("invalid range %q: min > max", tok)
			}
			if err := checkOrder(n1, n2); err != nil {
				return NaturalRangeFilter{}, err
			}
			af.Ranges = append(af.Ranges, NewInclusiveIntRange(n1, n2))
		case left != "":
			n, err := parseNaturalNumber(left)
			if err != nil {
				return NaturalRangeFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := checkOrder(n); err != nil {
				return NaturalRangeFilter{}, err
			}
			af.Ranges = append(af.Ranges, NewGreaterOrEqualThanIntRange(n))
		default:
			n, err := parseNaturalNumber(right)
			if err != nil {
				return NaturalRangeFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := checkOrder(n); err != nil {
				return NaturalRangeFilter{}, err
			}
			af.Ranges = append(af.Ranges, NewLessOrEqualThanIntRange(n))
		}
	}
	return af, nil
}

func NewAllNaturalRangeFilter() NaturalRangeFilter {
	return NaturalRangeFilter{Ranges: []IntRange{NewGreaterOrEqualThanIntRange(0)}}
}

func parseNaturalNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not natural number: %q", s)
	}
	return n, nil
}

// Contains reports whether n is accepted by the filter.
func (f NaturalRangeFilter) Contains(n int) bool {
	if n < 0 {
		return false
	}
	for _, r := range f.Ranges {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// IsNotEmpty reports whether the filter accepts at least one natural number.
func (f NaturalRangeFilter) IsNotEmpty() bool {
	naturals := NewGreaterOrEqualThanIntRange(0)
	for _, r := range f.Ranges {
		if r.HasIntesect(naturals) {
			return true
		}
	}
	return false
}

// IsLowerBounded is always true: negative numbers are never accepted.
func (f NaturalRangeFilter) IsLowerBounded() bool {
	return true
}

// IsUpperBounded reports whether the filter accepts finitely many numbers.
func (f NaturalRangeFilter) IsUpperBounded() bool {
	for _, r := range f.Ranges {
		if r.MaxUnbounded && r.IsValid() {
			return false
		}
	}
	return true
}

// IsAllNatural reports whether the filter accepts every natural number.
func (f NaturalRangeFilter) IsAllNatural() bool {
	left := []IntRange{NewGreaterOrEqualThanIntRange(0)}
	for _, r := range f.Ranges {
		var next []IntRange
		for _, l := range left {
			next = append(next, l.Substract(r)...)
		}
		if len(next) == 0 {
			return true
		}
		left = next
	}
	return false
}

// Normalize returns the accepted set as sorted, non-overlapping closed ranges,
// merging ranges that overlap or touch. A right-unbounded range comes last.
func (f NaturalRangeFilter) Normalize() []IntRange {
	var closed []IntRange
	for _, r := range f.Ranges {
		n := r.TryMyBestToClosedInterval()
		if n.MinUnbounded || n.Min < 0 {
			n.MinUnbounded, n.MinInclude, n.Min = false, true, 0
		}
		if n.IsValid() {
			closed = append(closed, n)
		}
	}
	if len(closed) == 0 {
		return nil
	}

	sort.Slice(closed, func(i, j int) bool {
		a, b := closed[i], closed[j]
		if a.Min != b.Min {
			return a.Min < b.Min
		}
		if a.MaxUnbounded != b.MaxUnbounded {
			return b.MaxUnbounded
		}
		return a.Max < b.Max
	})

	merged := closed[:1]
	for _, cur := range closed[1:] {
		last := &merged[len(merged)-1]
		if last.MaxUnbounded {
			break
		}
		// 整数相邻也合并
		if last.Max == math.MaxInt || last.Max+1 >= cur.Min {
			if cur.MaxUnbounded {
				last.MaxUnbounded, last.Max = true, 0
			} else if cur.Max > last.Max {
				last.Max = cur.Max
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// String renders the normalized filter in the syntax NewNaturalRangeFilter reads.
func (f NaturalRangeFilter) String() string {
	norm := f.Normalize()
	if len(norm) == 0 {
		return ""
	}
	if len(norm) == 1 && norm[0].MaxUnbounded && norm[0].Min == 0 {
		return "all"
	}
	parts := make([]string, 0, len(norm))
	for _, r := range norm {
		switch {
		case r.MaxUnbounded:
			parts = append(parts, fmt.Sprintf("%d-", r.Min))
		case r.Min == r.Max:
			parts = append(parts, strconv.Itoa(r.Min))
		default:
			parts = append(parts, fmt.Sprintf("%d-%d", r.Min, r.Max))
		}
	}
	return strings.Join(parts, "_")
}
