package slice

import "testing"

func TestNewNaturalRangeFilter_ValidAndString(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantStr      string
		wantNotEmpty bool
		wantAll      bool
		testTrue     []int
		testFalse    []int
	}{
		{"empty", "", "", false, false, nil, nil},
		{"all", "all", "all", true, true, []int{0, 50, 100}, nil},
		{"single", "3", "3", true, false, []int{3}, []int{-1, 2, 4}},
		{"inclusive", "1-3", "1-3", true, false, []int{1, 2, 3}, []int{-1, 0, 4}},
		{"unbounded", "-5-", "all", true, true, []int{0, 5, 1000}, []int{-1}},
		{"rightOpen", "5-", "5-", true, false, []int{5, 1000}, []int{-1, 4}},
		{"leftOpen", "-4", "0-4", true, false, []int{0, 1, 2, 3, 4}, []int{-1, 5, 6}},
		{"multiple_singles", "1_3_5", "1_3_5", true, false, []int{1, 3, 5}, []int{-1, 0, 2, 4, 6}},
		{"multiple_ranges", "1-2_4-5", "1-2_4-5", true, false, []int{1, 2, 4, 5}, []int{-1, 0, 3, 6}},
		{"adjacent_singles_merge", "1_2", "1-2", true, false, []int{1, 2}, []int{-1, 0, 3}},
		{"adjacent_ranges_no_merge", "1-3_5-7", "1-3_5-7", true, false, []int{1, 2, 3, 5, 6, 7}, []int{-1, 0, 4, 8}},
		{"adjacent_ranges_merge", "1-3_4-6", "1-6", true, false, []int{1, 2, 3, 4, 5, 6}, []int{-1, 0, 7}},
		{"adjacent_range_and_open_merge", "1-3_4-", "1-", true, false, []int{1, 4, 99}, []int{-1, 0}},
		{"with_unbounded", " -3_5- ", "0-3_5-", true, false, []int{0, 1, 2, 3, 5, 10, 100}, []int{-1, 4}},
		{"prefix_and_rest_is_all", "-3_4-", "all", true, true, []int{0, 3, 4, 10}, []int{-1}},
		{"compound_valid", "1_3-5_7-7", "1_3-5_7", true, false, []int{1, 3, 4, 5, 7}, []int{-1, 0, 2, 6, 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewNaturalRangeFilter(tc.in)
			if err != nil {
				t.Fatalf("unexpected error parsing %q: %v", tc.in, err)
			}
			if got := f.String(); got != tc.wantStr {
				t.Fatalf("String(): got %q want %q (input %q)", got, tc.wantStr, tc.in)
			}
			if ne := f.IsNotEmpty(); ne != tc.wantNotEmpty {
				t.Fatalf("IsNotEmpty(): got %v want %v (input %q)", ne, tc.wantNotEmpty, tc.in)
			}
			if ub := f.IsAllNatural(); ub != tc.wantAll {
				t.Fatalf("IsAllNatural(): got %v want %v (input %q)", ub, tc.wantAll, tc.in)
			}
			for _, v := range tc.testTrue {
				if !f.Contains(v) {
					t.Fatalf("Contains(%d) = false, want true (input %q)", v, tc.in)
				}
			}
			for _, v := range tc.testFalse {
				if f.Contains(v) {
					t.Fatalf("Contains(%d) = true, want false (input %q)", v, tc.in)
				}
			}
		})
	}
}

func TestNewNaturalRangeFilter_Errors(t *testing.T) {
	for _, in := range []string{"3_1", "1__2", "a", "-", "4-2", "1-2-3", "-x-", "1_-0"} {
		if _, err := NewNaturalRangeFilter(in); err == nil {
			t.Fatalf("expected NewNaturalRangeFilter(%q) to fail", in)
		}
	}
}

func TestNaturalRangeFilter_Bounds(t *testing.T) {
	tests := []struct {
		in           string
		upperBounded bool
	}{
		{"", true},
		{"1-3_5", true},
		{"-4", true},
		{"2-", false},
		{"all", false},
	}
	for _, tc := range tests {
		f, err := NewNaturalRangeFilter(tc.in)
		if err != nil {
			t.Fatalf("NewNaturalRangeFilter(%q): %v", tc.in, err)
		}
		if !f.IsLowerBounded() {
			t.Fatalf("IsLowerBounded(%q) = false", tc.in)
		}
		if got := f.IsUpperBounded(); got != tc.upperBounded {
			t.Fatalf("IsUpperBounded(%q) = %v, want %v", tc.in, got, tc.upperBounded)
		}
	}
}
