package extractor

import (
	"bytes"
	"context"

	"lector-pages/internal/domain"
)

// PlainTextExtractor handles UTF-8 text uploads (txt, md).
type PlainTextExtractor struct {
	format domain.Format
}

// NewPlainTextExtractor creates a text extractor registered under format.
func NewPlainTextExtractor(format domain.Format) *PlainTextExtractor {
	return &PlainTextExtractor{format: format}
}

func (e *PlainTextExtractor) Format() domain.Format { return e.format }

// Extract drops invalid UTF-8 sequences and a leading byte order mark.
func (e *PlainTextExtractor) Extract(_ context.Context, data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	return string(bytes.ToValidUTF8(data, nil)), nil
}
