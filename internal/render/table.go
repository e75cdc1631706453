package render

import (
	"co2-pax-compare/internal/domain"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TableRenderer prints the comparison as a text, markdown or CSV table.
type TableRenderer struct {
	format Format
}

func NewTableRenderer(format Format) *TableRenderer {
	return &TableRenderer{format: format}
}

func (r *TableRenderer) ContentType() string {
	switch r.format {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (r *TableRenderer) Render(w io.Writer, rows domain.ComparisonTable) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{xAxisName, co2Name, paxName})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Year, formatValue(row.CO2), formatValue(row.PAX)})
	}

	var out string
	switch r.format {
	case FormatCSV:
		out = t.RenderCSV()
	case FormatMarkdown:
		out = t.RenderMarkdown()
	default:
		out = t.Render()
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
