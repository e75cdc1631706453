package ports

import (
	"co2-pax-compare/internal/domain"
	"io"
)

// Contract for presenting a comparison table.
// Implementations treat Year as a categorical label and plot CO2 and PAX on separate value axes.
type Renderer interface {
	Render(w io.Writer, table domain.ComparisonTable) error
	// MIME type of the rendered output.
	ContentType() string
}
