package grid

// Pack partitions the indices of widths into ordered lines whose summed
// widths fit maxWidth, using greedy first-fit without reordering. An empty
// line unconditionally accepts the next index, so a single column wider
// than maxWidth still forms its own line; no index is ever dropped or
// repeated. Empty input yields zero lines. A maxWidth below 1 is clamped
// to 1 rather than rejected.
//
// First-fit is deliberate: a better-fit or optimal packer would move line
// breaks around under live re-layout, which reads as jitter to the user.
func Pack(widths []int, maxWidth int) [][]int {
	if maxWidth < 1 {
		maxWidth = 1
	}

	var lines [][]int
	var line []int
	lineWidth := 0

	for i, w := range widths {
		switch {
		case len(line) == 0:
			line = append(line, i)
			lineWidth = w
		case lineWidth+w <= maxWidth:
			line = append(line, i)
			lineWidth += w
		default:
			lines = append(lines, line)
			line = []int{i}
			lineWidth = w
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}
