// Package renderer defines the export contract between the sheet model
// and concrete backends.
package renderer

import (
	"context"

	"github.com/elsgoossens/song-grid/sheet"
)

// Exporter renders an assembled sheet document into a final artifact,
// typically PDF bytes. Pages are produced strictly in order; the context
// cancels an in-flight export between pages. Export must release any
// staging resources on every exit path, success or failure.
type Exporter interface {
	Export(ctx context.Context, doc *sheet.Document) ([]byte, error)
}
