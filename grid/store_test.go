package grid

import "testing"

// TestStoreValues covers sparse reads, upserts and removal via the empty
// string.
func TestStoreValues(t *testing.T) {
	s := NewStore()

	if got := s.Value(0, 0, FieldChord); got != "" {
		t.Fatalf("unset value = %q, want empty", got)
	}

	s.SetValue(1, 2, FieldChord, "Am")
	if got := s.Value(1, 2, FieldChord); got != "Am" {
		t.Fatalf("value = %q, want Am", got)
	}
	// Same cell, different kind: independent keys.
	if got := s.Value(1, 2, FieldNote); got != "" {
		t.Fatalf("other kind = %q, want empty", got)
	}

	s.SetValue(1, 2, FieldChord, "")
	if got := s.Value(1, 2, FieldChord); got != "" {
		t.Fatalf("cleared value = %q, want empty", got)
	}
	if len(s.values) != 0 {
		t.Fatalf("store holds %d values after clear, want 0", len(s.values))
	}
}

// TestStoreBorders covers zero-value reads, toggling each side and the
// double-toggle round trip.
func TestStoreBorders(t *testing.T) {
	s := NewStore()

	if b := s.Border(3, 4); b.Left || b.Right {
		t.Fatalf("unset border = %+v, want zero", b)
	}

	s.ToggleBorder(3, 4, SideLeft)
	if b := s.Border(3, 4); !b.Left || b.Right {
		t.Fatalf("after left toggle = %+v, want {Left:true}", b)
	}

	s.ToggleBorder(3, 4, SideRight)
	if b := s.Border(3, 4); !b.Left || !b.Right {
		t.Fatalf("after right toggle = %+v, want both", b)
	}

	s.ToggleBorder(3, 4, SideLeft)
	s.ToggleBorder(3, 4, SideRight)
	if b := s.Border(3, 4); b.Left || b.Right {
		t.Fatalf("after double toggle = %+v, want zero", b)
	}

	// Unknown side is a no-op.
	s.ToggleBorder(3, 4, Side("top"))
	if b := s.Border(3, 4); b.Left || b.Right {
		t.Fatalf("after unknown side = %+v, want zero", b)
	}
}
