package render

import (
	"bytes"
	"co2-pax-compare/internal/domain"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = domain.ComparisonTable{
	{Year: "1980", CO2: 20.0, PAX: 100.0},
	{Year: "1981", CO2: 22.5, PAX: 110.25},
}

func TestNewSelectsRenderer(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
	}{
		{"", "text/html; charset=utf-8"},
		{"html", "text/html; charset=utf-8"},
		{"table", "text/plain; charset=utf-8"},
		{"md", "text/markdown; charset=utf-8"},
		{"CSV", "text/csv; charset=utf-8"},
		{"json", "application/json"},
	}

	for _, tc := range tests {
		r, err := New(tc.format)
		require.NoError(t, err, tc.format)
		assert.Equal(t, tc.contentType, r.ContentType(), tc.format)
	}
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("png")
	assert.Error(t, err)
}

func TestChartRendererWritesDualAxisPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewChartRenderer().Render(&buf, sample))

	out := buf.String()
	assert.Contains(t, out, chartTitle)
	assert.Contains(t, out, co2Name)
	assert.Contains(t, out, paxName)
	assert.Contains(t, out, `"1980"`)
	assert.Contains(t, out, "yAxisIndex")
}

func TestChartRendererEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewChartRenderer().Render(&buf, nil))
}

func TestTableRendererText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer(FormatTable).Render(&buf, sample))

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "co2 (gt)")
	assert.Contains(t, out, "1981")
	assert.Contains(t, out, "22.500")
	assert.Contains(t, out, "110.250")
}

func TestTableRendererCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer(FormatCSV).Render(&buf, sample))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "year,co2 (gt),pax (bn)", strings.ToLower(lines[0]))
	assert.Equal(t, "1980,20.000,100.000", lines[1])
}

func TestTableRendererMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer(FormatMarkdown).Render(&buf, sample))

	assert.Contains(t, buf.String(), "| 1980 | 20.000 | 100.000 |")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(&buf, sample))

	var got ChartConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "line", got.ChartType)
	assert.Equal(t, []string{"1980", "1981"}, got.Labels)
	require.Len(t, got.Series, 2)
	assert.Equal(t, []float64{20.0, 22.5}, got.Series[0].Data)
	assert.Equal(t, "right", got.Series[1].Axis)
}
