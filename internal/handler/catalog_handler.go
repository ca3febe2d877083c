package handler

import (
	"net/http"

	"lector-pages/internal/domain"
)

// CatalogHandler proxies searches to the book catalog.
type CatalogHandler struct {
	ingestion domain.IngestionService
	logger    domain.Logger
}

func NewCatalogHandler(ingestion domain.IngestionService, logger domain.Logger) *CatalogHandler {
	return &CatalogHandler{ingestion: ingestion, logger: logger}
}

// Search handles GET /api/gutenberg/search?q=&lang=.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	results, err := h.ingestion.Search(r.Context(), query.Get("q"), query.Get("lang"))
	if err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
