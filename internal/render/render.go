package render

import (
	"co2-pax-compare/internal/ports"
	"fmt"
	"strings"
)

type Format string

const (
	FormatHTML     Format = "html"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

const (
	chartTitle = "Compare CO2 to Passenger over Time"
	xAxisName  = "Year"
	co2Name    = "CO2 (Gt)"
	paxName    = "PAX (bn)"
	co2Color   = "red"
	paxColor   = "blue"
)

// ParseFormat accepts the names above plus "md" and "text" as aliases.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatHTML:
		return FormatHTML, nil
	case FormatTable, "text":
		return FormatTable, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// New returns the renderer for format.
func New(format string) (ports.Renderer, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	switch f {
	case FormatHTML:
		return NewChartRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return NewTableRenderer(f), nil
	}
}
