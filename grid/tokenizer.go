package grid

import "strings"

// Tokenize splits raw text into rows of words. Line endings are normalized
// to \n, lines are trimmed, blank lines are dropped, and each remaining
// line is split on runs of whitespace. Any input, including the empty
// string, yields a (possibly empty) row sequence.
func Tokenize(text string) []Row {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		rows = append(rows, Row(words))
	}
	return rows
}

// Rejoin is the canonical inverse of Tokenize: rows joined by newlines,
// words joined by single spaces. Tokenize(Rejoin(rows)) == rows.
func Rejoin(rows []Row) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}
