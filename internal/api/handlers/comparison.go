package handlers

import (
	"bytes"
	"co2-pax-compare/internal/api/dto"
	"co2-pax-compare/internal/domain"
	"co2-pax-compare/internal/ports"
	"log"
	"net/http"
	"strings"
)

// ComparisonHandler serves a table computed once at startup.
type ComparisonHandler struct {
	Table domain.ComparisonTable
	RunID string
	// NewRenderer resolves a format name to a renderer; handlers stay unaware of concrete renderers.
	NewRenderer   func(format string) (ports.Renderer, error)
	DefaultFormat string
}

// Rows returns the aligned table as JSON.
func (h *ComparisonHandler) Rows(w http.ResponseWriter, r *http.Request) {
	res := dto.ComparisonResponse{
		RunID: h.RunID,
		Rows:  make([]dto.ComparisonRowResponse, 0, len(h.Table)),
	}
	for _, row := range h.Table {
		res.Rows = append(res.Rows, dto.ComparisonRowResponse{
			Year: row.Year,
			CO2:  row.CO2,
			PAX:  row.PAX,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Chart renders the table in the format named by ?format=, defaulting to DefaultFormat.
func (h *ComparisonHandler) Chart(w http.ResponseWriter, r *http.Request) {
	if h.NewRenderer == nil {
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	format := strings.TrimSpace(r.URL.Query().Get("format"))
	if format == "" {
		format = h.DefaultFormat
	}

	renderer, err := h.NewRenderer(format)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Render fully before writing so a failure can still produce a 500.
	var buf bytes.Buffer
	if err := renderer.Render(&buf, h.Table); err != nil {
		log.Printf("render comparison failed: format=%s err=%v", format, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write response failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
