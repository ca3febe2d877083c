package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"lector-pages/internal/domain"

	"github.com/ledongthuc/pdf"
)

// PurePDFExtractor is a pure Go PDF text extractor, used when MuPDF cannot open a file.
type PurePDFExtractor struct{}

// NewPurePDFExtractor creates a pure Go PDF extractor
func NewPurePDFExtractor() *PurePDFExtractor {
	return &PurePDFExtractor{}
}

func (e *PurePDFExtractor) Format() domain.Format { return domain.FormatPDF }

func (e *PurePDFExtractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	// the parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages
		}
		pageText = strings.TrimSpace(sanitizeText(pageText))
		if pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}
