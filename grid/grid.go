// Package grid implements the word-cell grid model: tokenization of raw
// text into rows of words, the sparse annotation store, per-column width
// computation across annotation sub-rows, and greedy column packing.
//
// All widths in this package are integer pixels. Conversion to physical
// units happens at the page-geometry boundary in package sheet.
package grid

// FieldKind identifies one sub-row of a word cell.
type FieldKind string

const (
	FieldWord   FieldKind = "word"
	FieldChord  FieldKind = "chord"
	FieldRhythm FieldKind = "rhythm"
	FieldNote   FieldKind = "note"
)

// AnnotationKinds lists the kinds that carry user-entered values, in
// display order. FieldWord is derived from the row text and never stored.
var AnnotationKinds = []FieldKind{FieldChord, FieldRhythm, FieldNote}

// Valid reports whether k is a known annotation kind.
func (k FieldKind) Valid() bool {
	for _, a := range AnnotationKinds {
		if k == a {
			return true
		}
	}
	return false
}

// Placeholder returns the label shown (and measured) for an empty
// annotation field, so empty cells keep a usable input width.
func (k FieldKind) Placeholder() string {
	switch k {
	case FieldChord:
		return "chord"
	case FieldRhythm:
		return "rhythm"
	case FieldNote:
		return "note"
	default:
		return ""
	}
}

// Row is one tokenized input line: an ordered sequence of non-empty words.
type Row []string

// Side selects one vertical border of a cell.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// BorderState holds the divider toggles of one cell. The zero value is the
// default for any cell that was never toggled.
type BorderState struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Layout constants, in pixels.
const (
	// CellPaddingPx is added on each side of a measured text.
	CellPaddingPx = 6
	// MinColumnWidthPx floors every computed column width.
	MinColumnWidthPx = 28
	// LineWidthFloorPx is the smallest usable line width.
	LineWidthFloorPx = 120
	// ContainerInsetPx is reserved for container chrome around the grid.
	ContainerInsetPx = 16
)

// ClampLineWidth derives the packing budget from a container width.
// The result never falls below LineWidthFloorPx, so layout always has a
// positive budget even for degenerate container widths.
func ClampLineWidth(containerWidth int) int {
	w := containerWidth - ContainerInsetPx
	if w < LineWidthFloorPx {
		return LineWidthFloorPx
	}
	return w
}
