package canvasrenderer

import (
	"image"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/elsgoossens/song-grid/sheet"
)

// staging owns the per-page rasters of one in-flight export. The export
// holds it exclusively: rasterization runs page by page on this area, and
// release drops every raster no matter how the export ends.
type staging struct {
	rasters []*image.RGBA
}

func newStaging(pages int) *staging {
	return &staging{rasters: make([]*image.RGBA, pages)}
}

// rasterize draws one page's content region and rasterizes it at the
// document's scale factor. The result is retained in the staging area.
func (s *staging) rasterize(i int, r *Renderer, page sheet.Page, doc *sheet.Document) *image.RGBA {
	geom := doc.Geometry

	heightMM := sheet.PxToMm(page.ContentHeight)
	if heightMM <= 0 {
		heightMM = sheet.PxToMm(1)
	}
	c := canvas.New(geom.PrintableWidthMM(), heightMM)
	cctx := canvas.NewContext(c)
	cctx.SetCoordSystem(canvas.CartesianIV)
	r.drawPageContent(cctx, page, doc)

	scale := geom.Scale
	if scale <= 0 {
		scale = 1
	}
	img := rasterizer.Draw(c, canvas.DPMM(sheet.PxPerMm*scale), canvas.DefaultColorSpace)
	s.rasters[i] = img
	return img
}

// release tears the staging area down; safe to call on any exit path.
func (s *staging) release() {
	for i := range s.rasters {
		s.rasters[i] = nil
	}
	s.rasters = nil
}
