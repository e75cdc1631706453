package api

import (
	"co2-pax-compare/internal/api/dto"
	"co2-pax-compare/internal/domain"
	"co2-pax-compare/internal/ports"
	"co2-pax-compare/internal/render"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	return NewRouter(RouterConfig{
		Table: domain.ComparisonTable{
			{Year: "1980", CO2: 20.0, PAX: 100.0},
			{Year: "1981", CO2: 22.0, PAX: 110.0},
		},
		RunID:         "run-1",
		NewRenderer:   render.New,
		DefaultFormat: "html",
	})
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestComparisonRows(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comparison", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res dto.ComparisonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "run-1", res.RunID)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, dto.ComparisonRowResponse{Year: "1981", CO2: 22.0, PAX: 110.0}, res.Rows[1])
}

func TestComparisonRejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/comparison", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChartDefaultsToHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rec.Body.String(), "Compare CO2 to Passenger over Time")
}

func TestChartCSVFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart?format=csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))
	assert.Contains(t, rec.Body.String(), "1981,22.000,110.000")
}

func TestChartUnknownFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart?format=gif", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRootRedirectsToChart(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/chart", rec.Header().Get("Location"))
}

func TestUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecovererTurnsPanicInto500(t *testing.T) {
	h := NewRouter(RouterConfig{
		NewRenderer: func(string) (ports.Renderer, error) { panic("renderer blew up") },
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chart", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatusWriterRecordsImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec}

	n, err := sw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, sw.status)
	assert.Equal(t, 5, sw.bytes)
}
