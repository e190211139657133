// Package sheet turns a grid snapshot into paginated pages of line groups,
// ready for rendering. A line group is one packed output line with all of
// its sub-rows (word plus active annotation rows); it is the atomic unit
// of pagination and is never split across pages.
package sheet

import "github.com/elsgoossens/song-grid/grid"

// Field is one annotation sub-row value of a cell, already in display form.
type Field struct {
	Kind grid.FieldKind `json:"kind"`
	Text string         `json:"text"`
}

// Cell is one word cell placed inside a line group. X and Width are pixels
// relative to the group origin.
type Cell struct {
	X      float64          `json:"x"`
	Width  float64          `json:"width"`
	Word   string           `json:"word"`
	Fields []Field          `json:"fields,omitempty"`
	Border grid.BorderState `json:"border"`
}

// LineGroup is one packed line of one row, with every sub-row, treated
// atomically by the paginator. Y is assigned during page assembly.
type LineGroup struct {
	Row     int     `json:"row"`
	Columns []int   `json:"columns"`
	Cells   []Cell  `json:"cells"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Y       float64 `json:"y"`
}

// Style holds the vertical metrics of rendered line groups, in pixels.
// The renderer derives these from its font metrics.
type Style struct {
	WordRowHeight  float64 `json:"wordRowHeight"`
	FieldRowHeight float64 `json:"fieldRowHeight"`
	GroupPadding   float64 `json:"groupPadding"`
	GroupGap       float64 `json:"groupGap"`
}

// GroupHeight is the rendered height of one group with n annotation rows.
func (s Style) GroupHeight(fieldRows int) float64 {
	return 2*s.GroupPadding + s.WordRowHeight + float64(fieldRows)*s.FieldRowHeight
}

// Meta holds document metadata written into the exported PDF.
type Meta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords,omitempty"`
}

// Page is an ordered run of line groups whose cumulative rendered height
// fits the page budget, except when it holds a single oversized group.
type Page struct {
	Groups        []LineGroup `json:"groups"`
	Header        string      `json:"header,omitempty"`
	Footer        string      `json:"footer,omitempty"`
	ContentHeight float64     `json:"contentHeight"`
}

// Document is the assembled, render-ready sheet.
type Document struct {
	Geometry PageGeometry     `json:"geometry"`
	Style    Style            `json:"style"`
	Meta     Meta             `json:"meta"`
	Active   []grid.FieldKind `json:"active"`
	Pages    []Page           `json:"pages"`
}
