package canvasrenderer

import (
	"bytes"
	"context"
	"testing"

	"github.com/elsgoossens/song-grid/grid"
	"github.com/elsgoossens/song-grid/sheet"
)

// newTestRenderer skips the test on machines without any of the known
// system fonts.
func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Options{})
	if err != nil {
		t.Skipf("no usable font on this machine: %v", err)
	}
	return r
}

// TestMeasure asserts measurement basics: empty text is zero, longer text
// is wider, and results are stable.
func TestMeasure(t *testing.T) {
	r := newTestRenderer(t)
	if got := r.Measure("", grid.FieldWord); got != 0 {
		t.Fatalf("empty text = %d, want 0", got)
	}
	short := r.Measure("hi", grid.FieldWord)
	long := r.Measure("hippopotamus", grid.FieldWord)
	if short <= 0 || long <= short {
		t.Fatalf("widths not monotonic: short=%d long=%d", short, long)
	}
	if again := r.Measure("hi", grid.FieldWord); again != short {
		t.Fatalf("measurement unstable: %d then %d", short, again)
	}
}

// TestStyle asserts the derived vertical metrics are positive.
func TestStyle(t *testing.T) {
	r := newTestRenderer(t)
	style := r.Style()
	if style.WordRowHeight <= 0 || style.FieldRowHeight <= 0 {
		t.Fatalf("style = %+v", style)
	}
}

// TestExport runs the full pipeline on a small session and checks the
// output is a PDF with the expected page count.
func TestExport(t *testing.T) {
	r := newTestRenderer(t)

	session := grid.NewSession(r, nil)
	session.SetActive(grid.FieldChord, true)
	session.SetText("amazing grace how sweet the sound")
	session.SetAnnotation(0, 0, grid.FieldChord, "G")
	session.ToggleBorder(0, 1, grid.SideLeft)

	geom := sheet.PageGeometry{
		WidthMM:  210,
		HeightMM: 297,
		Margin:   sheet.Margin{Top: 20, Right: 20, Bottom: 20, Left: 20},
		Scale:    1,
	}
	session.SetContainerWidth(geom.ContentWidthPx() + grid.ContainerInsetPx)

	doc := sheet.Compose(session.Snapshot(), r.Style(), geom,
		sheet.Meta{Title: "test"}, "", "${page} / ${pages}")

	data, err := r.Export(context.Background(), doc)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF: %q", data[:min(len(data), 8)])
	}
}

// TestExportRejectsEmptyDocument asserts the guard on empty input.
func TestExportRejectsEmptyDocument(t *testing.T) {
	r := newTestRenderer(t)
	if _, err := r.Export(context.Background(), &sheet.Document{}); err == nil {
		t.Fatalf("empty document exported without error")
	}
}

// TestExportCanceledContext asserts cancellation surfaces as an error.
func TestExportCanceledContext(t *testing.T) {
	r := newTestRenderer(t)
	session := grid.NewSession(r, nil)
	session.SetText("one")
	doc := sheet.Compose(session.Snapshot(), r.Style(),
		sheet.PageGeometry{WidthMM: 210, HeightMM: 297, Scale: 1}, sheet.Meta{}, "", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Export(ctx, doc); err == nil {
		t.Fatalf("canceled export succeeded")
	}
}
