package sheet

import (
	"time"

	"github.com/elsgoossens/song-grid/binding"
	"github.com/elsgoossens/song-grid/grid"
)

// Build converts a grid snapshot into the flat ordered sequence of line
// groups: one group per pack line per row, with cell geometry resolved
// against the snapshot's column widths.
func Build(snap grid.Snapshot, style Style) []LineGroup {
	var groups []LineGroup
	for rowIdx, row := range snap.Rows {
		for _, line := range row.Lines {
			group := LineGroup{
				Row:     rowIdx,
				Columns: line,
				Height:  style.GroupHeight(len(snap.Active)),
			}
			x := 0.0
			for _, col := range line {
				cell := row.Cells[col]
				c := Cell{
					X:      x,
					Width:  float64(cell.Width),
					Word:   cell.Word,
					Border: cell.Border,
				}
				for _, kind := range snap.Active {
					c.Fields = append(c.Fields, Field{Kind: kind, Text: cell.Fields[kind]})
				}
				group.Cells = append(group.Cells, c)
				x += c.Width
			}
			group.Width = x
			groups = append(groups, group)
		}
	}
	return groups
}

// Assemble paginates the groups against the page geometry, assigns each
// group its vertical offset, and interpolates the header/footer templates
// with ${title}, ${page}, ${pages} and ${date}.
func Assemble(groups []LineGroup, style Style, geom PageGeometry, meta Meta, header, footer string) *Document {
	packed := Paginate(groups, geom.ContentHeightPx(), GapMeasurer(style.GroupGap))

	doc := &Document{
		Geometry: geom,
		Style:    style,
		Meta:     meta,
		Pages:    make([]Page, len(packed)),
	}
	date := time.Now().Format("2006-01-02")
	for i, pageGroups := range packed {
		y := 0.0
		for j := range pageGroups {
			if j > 0 {
				y += style.GroupGap
			}
			pageGroups[j].Y = y
			y += pageGroups[j].Height
		}
		data := map[string]interface{}{
			"title": meta.Title,
			"page":  i + 1,
			"pages": len(packed),
			"date":  date,
		}
		doc.Pages[i] = Page{
			Groups:        pageGroups,
			Header:        binding.Interpolate(header, data),
			Footer:        binding.Interpolate(footer, data),
			ContentHeight: y,
		}
	}
	return doc
}

// Compose builds and assembles a snapshot in one step.
func Compose(snap grid.Snapshot, style Style, geom PageGeometry, meta Meta, header, footer string) *Document {
	doc := Assemble(Build(snap, style), style, geom, meta, header, footer)
	doc.Active = snap.Active
	return doc
}
