package grid

import (
	"reflect"
	"testing"
)

// TestPackBasic covers the documented contract: empty input, oversized
// single column, and a simple two-line split.
func TestPackBasic(t *testing.T) {
	if got := Pack(nil, 100); got != nil {
		t.Fatalf("Pack(nil) = %v, want nil", got)
	}
	if got := Pack([]int{5}, 1); !reflect.DeepEqual(got, [][]int{{0}}) {
		t.Fatalf("oversized single column = %v, want [[0]]", got)
	}
	got := Pack([]int{100, 100, 100}, 250)
	want := [][]int{{0, 1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Pack([100 100 100], 250) = %v, want %v", got, want)
	}
}

// TestPackFirstFit asserts first-fit semantics: a line closes on the first
// overflow even when a later column would still have fit.
func TestPackFirstFit(t *testing.T) {
	// 60+60=120 fits, +90 overflows; 30 would fit on line one but must
	// not be pulled forward.
	got := Pack([]int{60, 60, 90, 30}, 150)
	want := [][]int{{0, 1}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Pack = %v, want %v", got, want)
	}
}

// TestPackOversizedColumnOwnLine asserts that a column wider than the
// budget occupies a line alone, without disturbing its neighbors.
func TestPackOversizedColumnOwnLine(t *testing.T) {
	got := Pack([]int{50, 500, 50}, 100)
	want := [][]int{{0}, {1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Pack = %v, want %v", got, want)
	}
}

// TestPackClampsBudget asserts a maxWidth below 1 is clamped, not rejected.
func TestPackClampsBudget(t *testing.T) {
	got := Pack([]int{10, 10}, -5)
	want := [][]int{{0}, {1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Pack with negative budget = %v, want %v", got, want)
	}
}

// TestPackPreservesIndices asserts that for arbitrary inputs every index
// appears exactly once, in order, across the produced lines.
func TestPackPreservesIndices(t *testing.T) {
	cases := [][]int{
		{},
		{1},
		{300},
		{10, 20, 30, 40, 50, 60, 70},
		{120, 1, 1, 1, 120, 1, 120},
	}
	for _, widths := range cases {
		for _, max := range []int{1, 50, 120, 1000} {
			var flat []int
			for _, line := range Pack(widths, max) {
				if len(line) == 0 {
					t.Fatalf("Pack(%v, %d) produced an empty line", widths, max)
				}
				flat = append(flat, line...)
			}
			if len(flat) != len(widths) {
				t.Fatalf("Pack(%v, %d) covers %d indices, want %d", widths, max, len(flat), len(widths))
			}
			for i, idx := range flat {
				if idx != i {
					t.Fatalf("Pack(%v, %d) index order broken at %d: %v", widths, max, i, flat)
				}
			}
		}
	}
}
