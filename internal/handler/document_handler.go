// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"

	"lector-pages/internal/domain"
	apperrors "lector-pages/pkg/errors"
)

// DocumentHandler serves uploads and catalog imports.
type DocumentHandler struct {
	ingestion domain.IngestionService
	config    domain.Config
	logger    domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(ingestion domain.IngestionService, config domain.Config, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		ingestion: ingestion,
		config:    config,
		logger:    logger,
	}
}

// Upload handles POST /api/upload with optional "title" and "file" parts.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.GetMaxUploadSize())

	parts, err := r.MultipartReader()
	if err != nil {
		writeAppError(w, r, h.logger, apperrors.NewMultipartError("Request must be multipart/form-data", err))
		return
	}

	doc, err := h.ingestion.Upload(r.Context(), parts)
	if err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

type importRequest struct {
	ID *int64 `json:"id"`
}

// Import handles POST /api/gutenberg/import with body {"id": <book id>}.
func (h *DocumentHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}
	if req.ID == nil {
		writeAppError(w, r, h.logger, apperrors.NewValidationError("Field 'id' is required"))
		return
	}

	doc, err := h.ingestion.Import(r.Context(), *req.ID)
	if err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Formats handles GET /api/formats.
func (h *DocumentHandler) Formats(w http.ResponseWriter, r *http.Request) {
	formats := h.ingestion.Formats()
	tags := make([]string, 0, len(formats))
	for _, f := range formats {
		tags = append(tags, f.String())
	}
	writeJSON(w, http.StatusOK, tags)
}
