package handler

import (
	"net/http"

	"lector-pages/internal/domain"
)

type TranslationHandler struct {
	translation domain.TranslationService
	logger      domain.Logger
}

func NewTranslationHandler(translation domain.TranslationService, logger domain.Logger) *TranslationHandler {
	return &TranslationHandler{translation: translation, logger: logger}
}

// Translate handles POST /api/translate with body {"word": ..., "target_lang": ...}.
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var query domain.TranslationQuery
	if err := decodeJSON(w, r, &query); err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}

	result, err := h.translation.Translate(r.Context(), query)
	if err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
