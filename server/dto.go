package server

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/elsgoossens/song-grid/grid"
)

// GridResponse is the full editing state returned by GET /grid.
type GridResponse struct {
	Text     string           `json:"text"`
	Rows     []grid.Row       `json:"rows"`
	Layouts  []grid.RowLayout `json:"layouts"`
	Snapshot grid.Snapshot    `json:"snapshot"`
}

// TextRequest replaces the session text.
type TextRequest struct {
	Text string `json:"text"`
}

// AnnotationRequest sets one annotation value on a cell.
type AnnotationRequest struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Validate validates the annotation request.
func (r AnnotationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Row, validation.Min(0)),
		validation.Field(&r.Col, validation.Min(0)),
		validation.Field(&r.Kind, validation.Required, validation.In("chord", "rhythm", "note")),
	)
}

// BorderRequest toggles one border side of a cell.
type BorderRequest struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Side string `json:"side"`
}

// Validate validates the border request.
func (r BorderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Row, validation.Min(0)),
		validation.Field(&r.Col, validation.Min(0)),
		validation.Field(&r.Side, validation.Required, validation.In("left", "right")),
	)
}

// BorderResponse reports the resulting border state of the cell.
type BorderResponse struct {
	Row    int              `json:"row"`
	Col    int              `json:"col"`
	Border grid.BorderState `json:"border"`
}

// FieldRequest switches an annotation kind on or off.
type FieldRequest struct {
	Kind   string `json:"kind"`
	Active bool   `json:"active"`
}

// Validate validates the field request.
func (r FieldRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind, validation.Required, validation.In("chord", "rhythm", "note")),
	)
}

// ViewportRequest records the observed container width in pixels.
type ViewportRequest struct {
	Width int `json:"width"`
}

// Validate validates the viewport request.
func (r ViewportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Width, validation.Min(0)),
	)
}
