package render

import (
	"co2-pax-compare/internal/domain"
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartRenderer draws the comparison as a dual-axis line chart in a standalone HTML page.
// Years form a category axis; CO2 uses the left value axis and PAX the right one.
type ChartRenderer struct {
	Width  string
	Height string
}

func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{Width: "1100px", Height: "600px"}
}

func (r *ChartRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *ChartRenderer) Render(w io.Writer, table domain.ComparisonTable) error {
	if len(table) == 0 {
		return errors.New("render chart: empty table")
	}

	line := r.build(table)
	if err := line.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func (r *ChartRenderer) build(table domain.ComparisonTable) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: chartTitle,
			Width:     r.Width,
			Height:    r.Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: chartTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithGridOpts(opts.Grid{Bottom: "15%"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xAxisName,
			Type: "category",
			AxisLabel: &opts.AxisLabel{
				Rotate:   90,
				Interval: "0",
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      co2Name,
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Color: co2Color},
			AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: co2Color}},
		}),
	)
	line.ExtendYAxis(opts.YAxis{
		Name:      paxName,
		Type:      "value",
		AxisLabel: &opts.AxisLabel{Color: paxColor},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: paxColor}},
	})

	line.SetXAxis(table.Labels()).
		AddSeries(co2Name, lineData(table.CO2()),
			charts.WithLineStyleOpts(opts.LineStyle{Color: co2Color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: co2Color}),
		).
		AddSeries(paxName, lineData(table.PAX()),
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: paxColor}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: paxColor}),
		)

	return line
}

func lineData(values []float64) []opts.LineData {
	out := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		out = append(out, opts.LineData{Value: v})
	}
	return out
}
