package grid

import (
	"reflect"
	"testing"
)

// TestTokenize covers whitespace splitting, blank-line dropping and line
// ending normalization.
func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []Row
	}{
		{"", nil},
		{"   \n\t\n", nil},
		{"hello world", []Row{{"hello", "world"}}},
		{"one  two\tthree", []Row{{"one", "two", "three"}}},
		{"a b\n\nc d\n", []Row{{"a", "b"}, {"c", "d"}}},
		{"a b\r\nc d\rx", []Row{{"a", "b"}, {"c", "d"}, {"x"}}},
	}
	for _, c := range cases {
		if got := Tokenize(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Tokenize(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// TestTokenizeRejoinRoundTrip asserts Tokenize(Rejoin(rows)) == rows for
// already-canonical rows.
func TestTokenizeRejoinRoundTrip(t *testing.T) {
	rows := []Row{{"amazing", "grace"}, {"how", "sweet", "the", "sound"}}
	if got := Tokenize(Rejoin(rows)); !reflect.DeepEqual(got, rows) {
		t.Fatalf("round trip = %v, want %v", got, rows)
	}
}
