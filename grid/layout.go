package grid

// Measurer returns the pixel width of text rendered in the style of the
// given field kind. Implementations must be deterministic for a fixed
// (text, kind) pair within one session; callers add their own padding.
type Measurer interface {
	Measure(text string, kind FieldKind) int
}

// DisplayFunc maps a raw annotation value to its display rendering for
// kinds that transform on display (rhythm notation). A nil DisplayFunc
// means raw values display as-is.
type DisplayFunc func(kind FieldKind, raw string) string

// RowLayout is the layout result for one row: one width per column and the
// pack lines produced from those widths.
type RowLayout struct {
	Widths []int   `json:"widths"`
	Lines  [][]int `json:"lines"`
}

// Engine computes per-row layouts. It holds no state of its own; callers
// re-run it whenever the row words, any annotation, an active-kind toggle,
// or the container width changes.
type Engine struct {
	Measurer       Measurer
	Store          *Store
	Active         []FieldKind
	Display        DisplayFunc
	ContainerWidth int
}

// LayoutRow computes the column width vector for one row and packs it.
// Each column width is the maximum over the word text and every active
// annotation kind of measured width plus padding, floored at
// MinColumnWidthPx. Fields with a display transform are measured in both
// raw and display form so neither editing nor display state clips.
func (e *Engine) LayoutRow(rowIdx int, row Row) RowLayout {
	widths := make([]int, len(row))
	for col, word := range row {
		w := e.Measurer.Measure(word, FieldWord) + 2*CellPaddingPx
		for _, kind := range e.Active {
			if fw := e.fieldWidth(rowIdx, col, kind) + 2*CellPaddingPx; fw > w {
				w = fw
			}
		}
		if w < MinColumnWidthPx {
			w = MinColumnWidthPx
		}
		widths[col] = w
	}
	return RowLayout{
		Widths: widths,
		Lines:  Pack(widths, ClampLineWidth(e.ContainerWidth)),
	}
}

// fieldWidth measures one annotation field without padding.
func (e *Engine) fieldWidth(rowIdx, col int, kind FieldKind) int {
	raw := e.Store.Value(rowIdx, col, kind)
	if raw == "" {
		return e.Measurer.Measure(kind.Placeholder(), kind)
	}
	w := e.Measurer.Measure(raw, kind)
	if e.Display != nil {
		if display := e.Display(kind, raw); display != raw {
			if dw := e.Measurer.Measure(display, kind); dw > w {
				w = dw
			}
		}
	}
	return w
}
