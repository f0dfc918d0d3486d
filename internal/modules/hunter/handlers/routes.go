package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the analysis and archive routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/keno/analysis", func(r chi.Router) {
		r.Get("/", h.HandleKenoAnalysis)
		r.Post("/archive", h.HandleKenoArchive)
	})

	r.Route("/positional/analysis", func(r chi.Router) {
		r.Get("/", h.HandlePositionalAnalysis)
		r.Post("/archive", h.HandlePositionalArchive)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/", h.HandleListReports)
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			h.HandleGetReport(w, r, chi.URLParam(r, "id"))
		})
	})
}
