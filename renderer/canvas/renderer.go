// Package canvasrenderer measures text and exports sheet documents via
// github.com/tdewolff/canvas. Each page's content region is drawn on an
// offscreen canvas, rasterized at the configured scale, and placed on a
// PDF page inside the margins, scaled to the printable width with the
// aspect ratio preserved.
package canvasrenderer

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/elsgoossens/song-grid/grid"
	"github.com/elsgoossens/song-grid/renderer"
	"github.com/elsgoossens/song-grid/sheet"
)

const (
	groupPaddingPx = 4.0
	groupGapPx     = 12.0
	borderWidthMM  = 0.3
)

// Options configures the canvas renderer.
type Options struct {
	// FontPath points at a TTF/OTF file. When empty, a small set of
	// well-known system font locations is tried.
	FontPath string
	// Family names the font family; cosmetic only.
	Family string

	// Per-kind font sizes in points. Zero values get defaults.
	WordSizePt   float64
	ChordSizePt  float64
	RhythmSizePt float64
	NoteSizePt   float64
}

func (o *Options) applyDefaults() {
	if o.Family == "" {
		o.Family = "song-grid"
	}
	if o.WordSizePt <= 0 {
		o.WordSizePt = 12
	}
	if o.ChordSizePt <= 0 {
		o.ChordSizePt = 10
	}
	if o.RhythmSizePt <= 0 {
		o.RhythmSizePt = 10
	}
	if o.NoteSizePt <= 0 {
		o.NoteSizePt = 9
	}
}

// Renderer implements grid.Measurer and renderer.Exporter on one font.
type Renderer struct {
	opts   Options
	family *canvas.FontFamily

	faceMu sync.Mutex
	faces  map[grid.FieldKind]*canvas.FontFace
}

var (
	_ grid.Measurer     = (*Renderer)(nil)
	_ renderer.Exporter = (*Renderer)(nil)
)

// New creates a renderer backed by the configured font.
func New(opts Options) (*Renderer, error) {
	opts.applyDefaults()
	data, err := loadFontData(opts.FontPath)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily(opts.Family)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Renderer{
		opts:   opts,
		family: family,
		faces:  map[grid.FieldKind]*canvas.FontFace{},
	}, nil
}

// Measure implements grid.Measurer: the pixel width of text rendered in
// the style of kind, rounded up.
func (r *Renderer) Measure(text string, kind grid.FieldKind) int {
	if text == "" {
		return 0
	}
	widthMM := r.face(kind).TextWidth(text)
	return int(math.Ceil(sheet.MmToPx(widthMM)))
}

// Style derives the sheet vertical metrics from the loaded font.
func (r *Renderer) Style() sheet.Style {
	wordHeight := sheet.MmToPx(r.face(grid.FieldWord).Metrics().LineHeight)
	fieldHeight := 0.0
	for _, kind := range grid.AnnotationKinds {
		if h := sheet.MmToPx(r.face(kind).Metrics().LineHeight); h > fieldHeight {
			fieldHeight = h
		}
	}
	return sheet.Style{
		WordRowHeight:  wordHeight,
		FieldRowHeight: fieldHeight,
		GroupPadding:   groupPaddingPx,
		GroupGap:       groupGapPx,
	}
}

func (r *Renderer) sizePt(kind grid.FieldKind) float64 {
	switch kind {
	case grid.FieldChord:
		return r.opts.ChordSizePt
	case grid.FieldRhythm:
		return r.opts.RhythmSizePt
	case grid.FieldNote:
		return r.opts.NoteSizePt
	default:
		return r.opts.WordSizePt
	}
}

func (r *Renderer) face(kind grid.FieldKind) *canvas.FontFace {
	r.faceMu.Lock()
	defer r.faceMu.Unlock()
	if f, ok := r.faces[kind]; ok {
		return f
	}
	f := r.family.Face(r.sizePt(kind), canvas.Black, canvas.FontRegular, canvas.FontNormal)
	r.faces[kind] = f
	return f
}

// Export renders doc to PDF bytes. Pages are rasterized strictly in order
// through a staging area owned by this call; ctx cancels between pages;
// the staging area is released on every exit path.
func (r *Renderer) Export(ctx context.Context, doc *sheet.Document) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, fmt.Errorf("export: empty document")
	}
	geom := doc.Geometry
	if geom.PrintableWidthMM() <= 0 || geom.PrintableHeightMM() <= 0 {
		return nil, fmt.Errorf("export: margins leave no printable area")
	}

	stage := newStaging(len(doc.Pages))
	defer stage.release()

	var buf bytes.Buffer
	writer := pdf.New(&buf, geom.WidthMM, geom.HeightMM, nil)
	writer.SetInfo(doc.Meta.Title, doc.Meta.Subject,
		strings.Join(doc.Meta.Keywords, ", "), doc.Meta.Author, doc.Meta.Creator)

	for i, page := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export canceled at page %d: %w", i+1, err)
		}
		img := stage.rasterize(i, r, page, doc)

		if i > 0 {
			writer.NewPage(geom.WidthMM, geom.HeightMM)
		}
		c := canvas.New(geom.WidthMM, geom.HeightMM)
		cctx := canvas.NewContext(c)
		cctx.SetCoordSystem(canvas.CartesianIV)

		r.drawHeaderFooter(cctx, page, geom)

		// Scale the raster to the printable width; the height follows
		// the source aspect ratio, no cropping or distortion.
		if img != nil && img.Bounds().Dx() > 0 {
			dpmm := float64(img.Bounds().Dx()) / geom.PrintableWidthMM()
			cctx.DrawImage(geom.Margin.Left, geom.Margin.Top, img, canvas.DPMM(dpmm))
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPageContent draws the page's line groups on a content-region canvas
// whose origin is the top-left corner of the printable area.
func (r *Renderer) drawPageContent(cctx *canvas.Context, page sheet.Page, doc *sheet.Document) {
	for _, group := range page.Groups {
		r.drawGroup(cctx, group, doc.Style)
	}
}

func (r *Renderer) drawGroup(cctx *canvas.Context, group sheet.LineGroup, style sheet.Style) {
	topMM := sheet.PxToMm(group.Y)
	heightMM := sheet.PxToMm(group.Height)

	for _, cell := range group.Cells {
		xMM := sheet.PxToMm(cell.X)
		textX := xMM + sheet.PxToMm(grid.CellPaddingPx)

		// Chord sits above the word, rhythm and note below.
		y := group.Y + style.GroupPadding
		for _, field := range cell.Fields {
			if field.Kind != grid.FieldChord {
				continue
			}
			r.drawText(cctx, textX, y, field.Text, field.Kind)
			y += style.FieldRowHeight
		}
		r.drawText(cctx, textX, y, cell.Word, grid.FieldWord)
		y += style.WordRowHeight
		for _, field := range cell.Fields {
			if field.Kind == grid.FieldChord {
				continue
			}
			r.drawText(cctx, textX, y, field.Text, field.Kind)
			y += style.FieldRowHeight
		}

		if cell.Border.Left {
			r.drawBorder(cctx, xMM, topMM, heightMM)
		}
		if cell.Border.Right {
			r.drawBorder(cctx, xMM+sheet.PxToMm(cell.Width), topMM, heightMM)
		}
	}
}

// drawText draws one sub-row value with its top edge at yPx.
func (r *Renderer) drawText(cctx *canvas.Context, xMM, yPx float64, text string, kind grid.FieldKind) {
	if text == "" {
		return
	}
	face := r.face(kind)
	baseline := sheet.PxToMm(yPx) + face.Metrics().Ascent
	cctx.DrawText(xMM, baseline, canvas.NewTextLine(face, text, canvas.Left))
}

func (r *Renderer) drawBorder(cctx *canvas.Context, xMM, topMM, heightMM float64) {
	cctx.SetStrokeColor(canvas.Black)
	cctx.SetStrokeWidth(borderWidthMM)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(0, heightMM)
	cctx.DrawPath(xMM, topMM, p)
}

// drawHeaderFooter draws the interpolated header/footer centered inside
// the top and bottom margin bands, in page coordinates.
func (r *Renderer) drawHeaderFooter(cctx *canvas.Context, page sheet.Page, geom sheet.PageGeometry) {
	face := r.face(grid.FieldNote)
	centerX := geom.WidthMM / 2
	if page.Header != "" {
		cctx.DrawText(centerX, geom.Margin.Top*0.6, canvas.NewTextLine(face, page.Header, canvas.Center))
	}
	if page.Footer != "" {
		cctx.DrawText(centerX, geom.HeightMM-geom.Margin.Bottom*0.4, canvas.NewTextLine(face, page.Footer, canvas.Center))
	}
}
