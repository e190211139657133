package grid

import "sync"

// DefaultContainerWidth is used until a viewport width is observed.
const DefaultContainerWidth = 800

// Session is the session controller: it owns the raw text, the derived
// rows, the annotation store, the active-kind toggles and the observed
// container width, and recomputes layout on demand. There are no ambient
// globals; everything flows through the session.
//
// All methods are safe for concurrent use. Layout recomputation is
// synchronous: mutators only update state, readers derive.
type Session struct {
	mu sync.Mutex

	text  string
	rows  []Row
	store *Store

	active         map[FieldKind]bool
	containerWidth int

	measurer Measurer
	display  DisplayFunc
}

// NewSession creates a session with all annotation kinds inactive and the
// default container width.
func NewSession(m Measurer, display DisplayFunc) *Session {
	return &Session{
		store:          NewStore(),
		active:         map[FieldKind]bool{},
		containerWidth: DefaultContainerWidth,
		measurer:       m,
		display:        display,
	}
}

// SetText replaces the raw text and rederives the rows. Annotations and
// borders are keyed positionally and deliberately left untouched, so they
// survive text edits as long as word positions keep their meaning.
func (s *Session) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.rows = Tokenize(text)
}

// Text returns the current raw text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Rows returns a copy of the derived rows.
func (s *Session) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRows(s.rows)
}

// SetAnnotation stores an annotation value. Kinds other than the known
// annotation kinds are ignored; word text is derived, never stored.
func (s *Session) SetAnnotation(row, col int, kind FieldKind, value string) {
	if !kind.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SetValue(row, col, kind, value)
}

// Annotation returns the raw annotation value at (row, col, kind).
func (s *Session) Annotation(row, col int, kind FieldKind) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Value(row, col, kind)
}

// ToggleBorder flips one border side of a cell.
func (s *Session) ToggleBorder(row, col int, side Side) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.ToggleBorder(row, col, side)
}

// Border returns the border state of a cell.
func (s *Session) Border(row, col int) BorderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Border(row, col)
}

// SetActive toggles whether an annotation kind participates in layout.
func (s *Session) SetActive(kind FieldKind, active bool) {
	if !kind.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[kind] = active
}

// ActiveKinds returns the active annotation kinds in display order.
func (s *Session) ActiveKinds() []FieldKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeKindsLocked()
}

func (s *Session) activeKindsLocked() []FieldKind {
	var kinds []FieldKind
	for _, k := range AnnotationKinds {
		if s.active[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// SetContainerWidth records the latest observed viewport width in pixels.
// Widths are sampled asynchronously by the caller; only the latest value
// matters.
func (s *Session) SetContainerWidth(px int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.containerWidth = px
}

// Layout recomputes the layout of every row against the current state.
func (s *Session) Layout() []RowLayout {
	s.mu.Lock()
	defer s.mu.Unlock()
	engine := s.engineLocked()
	layouts := make([]RowLayout, len(s.rows))
	for i, row := range s.rows {
		layouts[i] = engine.LayoutRow(i, row)
	}
	return layouts
}

func (s *Session) engineLocked() *Engine {
	return &Engine{
		Measurer:       s.measurer,
		Store:          s.store,
		Active:         s.activeKindsLocked(),
		Display:        s.display,
		ContainerWidth: s.containerWidth,
	}
}

// CellSnapshot is one word cell in a detached snapshot. Field values are
// display values: transformed for kinds that render a transformed form,
// raw otherwise.
type CellSnapshot struct {
	Word   string               `json:"word"`
	Fields map[FieldKind]string `json:"fields,omitempty"`
	Border BorderState          `json:"border"`
	Width  int                  `json:"width"`
}

// RowSnapshot is one row with its layout at snapshot time.
type RowSnapshot struct {
	Cells []CellSnapshot `json:"cells"`
	Lines [][]int        `json:"lines"`
}

// Snapshot is a static, non-interactive copy of the rendered grid, safe to
// hand to an exporter while the live session keeps mutating.
type Snapshot struct {
	Rows      []RowSnapshot `json:"rows"`
	Active    []FieldKind   `json:"active"`
	LineWidth int           `json:"lineWidth"`
}

// Snapshot captures the current grid with display values substituted for
// every annotation. The result shares no state with the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	engine := s.engineLocked()
	active := s.activeKindsLocked()

	snap := Snapshot{
		Rows:      make([]RowSnapshot, len(s.rows)),
		Active:    active,
		LineWidth: ClampLineWidth(s.containerWidth),
	}
	for i, row := range s.rows {
		layout := engine.LayoutRow(i, row)
		cells := make([]CellSnapshot, len(row))
		for col, word := range row {
			cell := CellSnapshot{
				Word:   word,
				Border: s.store.Border(i, col),
				Width:  layout.Widths[col],
			}
			if len(active) > 0 {
				cell.Fields = make(map[FieldKind]string, len(active))
				for _, kind := range active {
					value := s.store.Value(i, col, kind)
					if value != "" && s.display != nil {
						value = s.display(kind, value)
					}
					cell.Fields[kind] = value
				}
			}
			cells[col] = cell
		}
		snap.Rows[i] = RowSnapshot{Cells: cells, Lines: layout.Lines}
	}
	return snap
}

func copyRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = append(Row(nil), r...)
	}
	return out
}
