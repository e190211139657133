package grid

// address keys one annotation value. Indices are zero-based.
type address struct {
	row, col int
	kind     FieldKind
}

// cellKey keys one cell's border state.
type cellKey struct {
	row, col int
}

// Store is the sparse annotation and border store. Absent keys read as the
// empty string / zero BorderState, so a key that was never set and a key
// set back to its default are indistinguishable to readers.
//
// Store is not safe for concurrent use; Session serializes access.
type Store struct {
	values  map[address]string
	borders map[cellKey]BorderState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		values:  map[address]string{},
		borders: map[cellKey]BorderState{},
	}
}

// Value returns the annotation at (row, col, kind), or "" if unset.
func (s *Store) Value(row, col int, kind FieldKind) string {
	return s.values[address{row, col, kind}]
}

// SetValue upserts the annotation at (row, col, kind). Setting the empty
// string removes the key, keeping the store sparse.
func (s *Store) SetValue(row, col int, kind FieldKind, value string) {
	key := address{row, col, kind}
	if value == "" {
		delete(s.values, key)
		return
	}
	s.values[key] = value
}

// Border returns the border state at (row, col); zero value if unset.
func (s *Store) Border(row, col int) BorderState {
	return s.borders[cellKey{row, col}]
}

// ToggleBorder flips one side at (row, col), creating the entry with the
// other side false when absent. The entry is never removed on toggle-off,
// which readers cannot observe: an all-false entry reads like no entry.
func (s *Store) ToggleBorder(row, col int, side Side) {
	key := cellKey{row, col}
	b := s.borders[key]
	switch side {
	case SideLeft:
		b.Left = !b.Left
	case SideRight:
		b.Right = !b.Right
	default:
		return
	}
	s.borders[key] = b
}
