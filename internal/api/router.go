package api

import (
	"co2-pax-compare/internal/api/handlers"
	"co2-pax-compare/internal/domain"
	"co2-pax-compare/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	Table         domain.ComparisonTable
	RunID         string
	NewRenderer   func(format string) (ports.Renderer, error)
	DefaultFormat string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(
		func(next http.Handler) http.Handler { return loggingMiddleware(cfg.RunID, next) },
		middleware.Recoverer,
	)

	cmpHandler := &handlers.ComparisonHandler{
		Table:         cfg.Table,
		RunID:         cfg.RunID,
		NewRenderer:   cfg.NewRenderer,
		DefaultFormat: cfg.DefaultFormat,
	}

	r.Get("/health", handlers.Health)
	r.Get("/comparison", cmpHandler.Rows)
	r.Get("/chart", cmpHandler.Chart)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/chart", http.StatusFound)
	})

	return r
}
