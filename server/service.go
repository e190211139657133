// Package server exposes the editing session over HTTP: the interactive
// surface (text input, annotation fields, border clicks, field toggles,
// viewport resize) talks to these endpoints and the export action.
package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/elsgoossens/song-grid/grid"
	"github.com/elsgoossens/song-grid/renderer"
	"github.com/elsgoossens/song-grid/sheet"
)

// Sentinel errors mapped to HTTP status codes by the handlers.
var (
	ErrInvalidKind = errors.New("invalid field kind")
	ErrInvalidSide = errors.New("invalid border side")
)

// Service owns the live session and the export pipeline configuration.
type Service struct {
	session  *grid.Session
	exporter renderer.Exporter

	style  sheet.Style
	geom   sheet.PageGeometry
	meta   sheet.Meta
	header string
	footer string
}

// NewService wires a session to an exporter and page settings.
func NewService(session *grid.Session, exporter renderer.Exporter, style sheet.Style, geom sheet.PageGeometry, meta sheet.Meta, header, footer string) *Service {
	return &Service{
		session:  session,
		exporter: exporter,
		style:    style,
		geom:     geom,
		meta:     meta,
		header:   header,
		footer:   footer,
	}
}

// Grid returns the current grid state: raw text, rows, layout and the
// display snapshot.
func (s *Service) Grid() GridResponse {
	return GridResponse{
		Text:     s.session.Text(),
		Rows:     s.session.Rows(),
		Layouts:  s.session.Layout(),
		Snapshot: s.session.Snapshot(),
	}
}

// SetText replaces the session text.
func (s *Service) SetText(text string) {
	s.session.SetText(text)
}

// SetAnnotation stores one annotation value.
func (s *Service) SetAnnotation(row, col int, kind string, value string) error {
	k := grid.FieldKind(kind)
	if !k.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	s.session.SetAnnotation(row, col, k, value)
	return nil
}

// Annotation reads one raw annotation value.
func (s *Service) Annotation(row, col int, kind string) (string, error) {
	k := grid.FieldKind(kind)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return s.session.Annotation(row, col, k), nil
}

// ToggleBorder flips one border side of a cell.
func (s *Service) ToggleBorder(row, col int, side string) (grid.BorderState, error) {
	sd := grid.Side(side)
	if sd != grid.SideLeft && sd != grid.SideRight {
		return grid.BorderState{}, fmt.Errorf("%w: %q", ErrInvalidSide, side)
	}
	s.session.ToggleBorder(row, col, sd)
	return s.session.Border(row, col), nil
}

// SetField toggles an annotation kind on or off.
func (s *Service) SetField(kind string, active bool) error {
	k := grid.FieldKind(kind)
	if !k.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	s.session.SetActive(k, active)
	return nil
}

// SetViewport records the latest observed viewport width.
func (s *Service) SetViewport(width int) {
	s.session.SetContainerWidth(width)
}

// Export snapshots the session and renders it to PDF bytes. The snapshot
// is detached: edits arriving during the export do not affect it.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	snap := s.session.Snapshot()
	doc := sheet.Compose(snap, s.style, s.geom, s.meta, s.header, s.footer)
	return s.exporter.Export(ctx, doc)
}
