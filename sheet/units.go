package sheet

import (
	"fmt"
	"strings"
)

// This file defines unit conversions and page geometry. Layout runs in
// pixels at 96 dpi; page geometry and PDF assembly run in millimeters.

// Conversion constants between pixels (96 dpi), millimeters and points.
const (
	PxPerMm = 96.0 / 25.4
	MmPerPx = 25.4 / 96.0
	PtToMm  = 0.352777
	MmToPt  = 1.0 / PtToMm
)

// MmToPx converts millimeters to pixels.
func MmToPx(mm float64) float64 { return mm * PxPerMm }

// PxToMm converts pixels to millimeters.
func PxToMm(px float64) float64 { return px * MmPerPx }

var pagePresets = map[string][2]float64{
	"A4":     {210, 297},
	"A5":     {148, 210},
	"LETTER": {215.9, 279.4},
}

// PageSize resolves a preset name and orientation to width/height in mm.
func PageSize(name, orientation string) (float64, float64, error) {
	base, ok := pagePresets[strings.ToUpper(name)]
	if !ok {
		return 0, 0, fmt.Errorf("unsupported page size %q", name)
	}
	w, h := base[0], base[1]
	if strings.EqualFold(orientation, "landscape") {
		w, h = h, w
	}
	return w, h, nil
}

// Margin is a page margin in millimeters.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// PageGeometry describes the target page: physical size, margins and the
// raster scale used at export time.
type PageGeometry struct {
	WidthMM  float64 `json:"widthMm"`
	HeightMM float64 `json:"heightMm"`
	Margin   Margin  `json:"margin"`
	Scale    float64 `json:"scale"`
}

// PrintableWidthMM is the page width inside the margins.
func (g PageGeometry) PrintableWidthMM() float64 {
	return g.WidthMM - g.Margin.Left - g.Margin.Right
}

// PrintableHeightMM is the page height inside the margins.
func (g PageGeometry) PrintableHeightMM() float64 {
	return g.HeightMM - g.Margin.Top - g.Margin.Bottom
}

// ContentWidthPx is the printable width in layout pixels. Layout widths
// are packed against this (after the grid package's clamping).
func (g PageGeometry) ContentWidthPx() int {
	return int(MmToPx(g.PrintableWidthMM()))
}

// ContentHeightPx is the page height budget in layout pixels.
func (g PageGeometry) ContentHeightPx() float64 {
	return MmToPx(g.PrintableHeightMM())
}
