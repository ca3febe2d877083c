// Package extractor turns uploaded document payloads into plain text.
package extractor

import (
	"context"
	"fmt"
	"sort"
	"time"

	"lector-pages/internal/domain"
	apperrors "lector-pages/pkg/errors"
)

// Registry dispatches extraction to the TextExtractor registered for a format.
type Registry struct {
	extractors map[domain.Format]domain.TextExtractor
	logger     domain.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger domain.Logger) *Registry {
	return &Registry{
		extractors: make(map[domain.Format]domain.TextExtractor),
		logger:     logger,
	}
}

// NewDefaultRegistry registers every built-in format.
func NewDefaultRegistry(logger domain.Logger) *Registry {
	r := NewRegistry(logger)
	r.Register(NewFallbackExtractor(
		NewFitzPDFExtractor(logger, defaultPageTimeout),
		NewPurePDFExtractor(),
		logger,
	))
	r.Register(NewEPUBExtractor())
	r.Register(NewPlainTextExtractor(domain.FormatText))
	r.Register(NewPlainTextExtractor(domain.FormatMarkdown))
	return r
}

// Register adds or replaces the extractor for e.Format().
func (r *Registry) Register(e domain.TextExtractor) {
	r.extractors[e.Format()] = e
}

// Formats returns the registered format tags, sorted.
func (r *Registry) Formats() []domain.Format {
	out := make([]domain.Format, 0, len(r.extractors))
	for f := range r.extractors {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Detect resolves the format of an uploaded file.
func (r *Registry) Detect(filename, contentType string, head []byte) domain.Format {
	return DetectFormat(filename, contentType, head)
}

// Extract converts data of the given format into plain text.
// Failures are returned as extraction AppErrors; context errors are returned as is.
func (r *Registry) Extract(ctx context.Context, data []byte, format domain.Format) (string, error) {
	if len(data) == 0 {
		return "", apperrors.NewExtractionError("Document is empty", domain.ErrEmptyDocument)
	}

	e, ok := r.extractors[format]
	if !ok {
		return "", apperrors.NewExtractionError(
			"Unsupported document format",
			fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format),
		)
	}

	start := time.Now()
	text, err := e.Extract(ctx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		r.logger.Warn("Text extraction failed", "format", format, "bytes", len(data), "error", err)
		return "", apperrors.NewExtractionError("Failed to extract text from document", err)
	}

	r.logger.Debug("Text extracted", "format", format, "bytes", len(data), "chars", len(text), "took", time.Since(start))
	return text, nil
}
