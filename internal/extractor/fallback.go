package extractor

import (
	"context"

	"lector-pages/internal/domain"
)

// FallbackExtractor tries primary, then secondary when primary fails.
// Both must serve the same format.
type FallbackExtractor struct {
	primary   domain.TextExtractor
	secondary domain.TextExtractor
	logger    domain.Logger
}

// NewFallbackExtractor chains two extractors for one format.
func NewFallbackExtractor(primary, secondary domain.TextExtractor, logger domain.Logger) *FallbackExtractor {
	return &FallbackExtractor{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

func (f *FallbackExtractor) Format() domain.Format { return f.primary.Format() }

// Extract returns the primary error when both extractors fail.
func (f *FallbackExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	text, err := f.primary.Extract(ctx, data)
	if err == nil {
		return text, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	f.logger.Warn("Primary extractor failed; trying fallback", "format", f.Format(), "error", err)
	text, fallbackErr := f.secondary.Extract(ctx, data)
	if fallbackErr != nil {
		f.logger.Debug("Fallback extractor failed", "format", f.Format(), "error", fallbackErr)
		return "", err
	}
	return text, nil
}
