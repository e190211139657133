package sheet

// PageMeasurer returns the rendered height of a page holding the given
// groups. Pagination re-measures the page-so-far on every tentative append
// instead of summing group heights, because inter-group spacing is part of
// the rendered height and belongs to the measurer, not the algorithm.
type PageMeasurer func(groups []LineGroup) float64

// GapMeasurer returns a PageMeasurer that stacks groups with a fixed gap
// between consecutive groups.
func GapMeasurer(gap float64) PageMeasurer {
	return func(groups []LineGroup) float64 {
		total := 0.0
		for i, g := range groups {
			if i > 0 {
				total += gap
			}
			total += g.Height
		}
		return total
	}
}

// Paginate partitions groups into pages bounded by maxPageHeight without
// splitting any group. A page is closed only when the tentative append
// overflows AND the page already holds at least one other group; a single
// group taller than the budget overflows alone rather than being rejected.
// Group order is preserved within and across pages; no page is empty.
// A non-positive maxPageHeight is clamped rather than treated as an error.
func Paginate(groups []LineGroup, maxPageHeight float64, measure PageMeasurer) [][]LineGroup {
	if maxPageHeight <= 0 {
		maxPageHeight = 1
	}
	if measure == nil {
		measure = GapMeasurer(0)
	}

	var pages [][]LineGroup
	var page []LineGroup

	for _, g := range groups {
		page = append(page, g)
		if len(page) > 1 && measure(page) > maxPageHeight {
			pages = append(pages, page[:len(page)-1])
			page = []LineGroup{g}
		}
	}
	if len(page) > 0 {
		pages = append(pages, page)
	}
	return pages
}
