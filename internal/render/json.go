package render

import (
	"co2-pax-compare/internal/domain"
	"encoding/json"
	"fmt"
	"io"
)

// ChartConfig is a renderer-neutral description of the dual-axis chart,
// for frontends that draw it themselves.
type ChartConfig struct {
	ChartType string        `json:"chartType"`
	Title     string        `json:"title"`
	XAxis     string        `json:"xAxis"`
	Labels    []string      `json:"labels"`
	Series    []ChartSeries `json:"series"`
	ShowGrid  bool          `json:"showGrid"`
}

type ChartSeries struct {
	Name  string    `json:"name"`
	Axis  string    `json:"axis"`
	Color string    `json:"color"`
	Data  []float64 `json:"data"`
}

// NewChartConfig describes table as a line chart with CO2 on the left axis and PAX on the right.
func NewChartConfig(table domain.ComparisonTable) ChartConfig {
	return ChartConfig{
		ChartType: "line",
		Title:     chartTitle,
		XAxis:     xAxisName,
		Labels:    table.Labels(),
		Series: []ChartSeries{
			{Name: co2Name, Axis: "left", Color: co2Color, Data: table.CO2()},
			{Name: paxName, Axis: "right", Color: paxColor, Data: table.PAX()},
		},
		ShowGrid: true,
	}
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) ContentType() string { return "application/json" }

func (r *JSONRenderer) Render(w io.Writer, table domain.ComparisonTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewChartConfig(table)); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}
