package sheet

import "testing"

func groupsOfHeight(heights ...float64) []LineGroup {
	out := make([]LineGroup, len(heights))
	for i, h := range heights {
		out[i] = LineGroup{Row: i, Height: h}
	}
	return out
}

// TestPaginateBasic covers the even split: four groups of 100 against a
// 250 budget give two pages of two.
func TestPaginateBasic(t *testing.T) {
	pages := Paginate(groupsOfHeight(100, 100, 100, 100), 250, GapMeasurer(0))
	if len(pages) != 2 || len(pages[0]) != 2 || len(pages[1]) != 2 {
		t.Fatalf("pages = %v", shape(pages))
	}
}

// TestPaginateOversizedGroup asserts a group taller than the budget still
// lands on a page alone instead of being rejected.
func TestPaginateOversizedGroup(t *testing.T) {
	pages := Paginate(groupsOfHeight(50, 900, 50), 100, GapMeasurer(0))
	if len(pages) != 3 {
		t.Fatalf("pages = %v, want 3 pages", shape(pages))
	}
	if len(pages[1]) != 1 || pages[1][0].Height != 900 {
		t.Fatalf("oversized group not alone: %v", shape(pages))
	}
}

// TestPaginateGapCounts asserts the gap participates in the overflow
// check: three groups of 80 fit a 240 budget without gaps but not with
// a 10 gap.
func TestPaginateGapCounts(t *testing.T) {
	pages := Paginate(groupsOfHeight(80, 80, 80), 240, GapMeasurer(0))
	if len(pages) != 1 {
		t.Fatalf("no-gap pages = %v, want 1", shape(pages))
	}
	pages = Paginate(groupsOfHeight(80, 80, 80), 240, GapMeasurer(10))
	if len(pages) != 2 || len(pages[0]) != 2 || len(pages[1]) != 1 {
		t.Fatalf("gap pages = %v, want [2 1]", shape(pages))
	}
}

// TestPaginateOrderPreserved asserts group order is stable across pages.
func TestPaginateOrderPreserved(t *testing.T) {
	pages := Paginate(groupsOfHeight(60, 60, 60, 60, 60), 130, nil)
	i := 0
	for _, page := range pages {
		if len(page) == 0 {
			t.Fatalf("empty page in %v", shape(pages))
		}
		for _, g := range page {
			if g.Row != i {
				t.Fatalf("order broken: got row %d at position %d", g.Row, i)
			}
			i++
		}
	}
	if i != 5 {
		t.Fatalf("paginated %d groups, want 5", i)
	}
}

// TestPaginateEmpty asserts empty input yields no pages.
func TestPaginateEmpty(t *testing.T) {
	if pages := Paginate(nil, 100, nil); len(pages) != 0 {
		t.Fatalf("pages = %v, want none", shape(pages))
	}
}

func shape(pages [][]LineGroup) []int {
	out := make([]int, len(pages))
	for i, p := range pages {
		out[i] = len(p)
	}
	return out
}
