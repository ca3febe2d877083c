package extractor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"lector-pages/internal/domain"

	"github.com/gen2brain/go-fitz"
)

const defaultPageTimeout = 90 * time.Second

// FitzPDFExtractor extracts PDF text with MuPDF.
type FitzPDFExtractor struct {
	logger      domain.Logger
	pageTimeout time.Duration
}

// NewFitzPDFExtractor creates a MuPDF backed extractor. pageTimeout bounds each page.
func NewFitzPDFExtractor(logger domain.Logger, pageTimeout time.Duration) *FitzPDFExtractor {
	if pageTimeout <= 0 {
		pageTimeout = defaultPageTimeout
	}
	return &FitzPDFExtractor{
		logger:      logger,
		pageTimeout: pageTimeout,
	}
}

func (p *FitzPDFExtractor) Format() domain.Format { return domain.FormatPDF }

// Extract returns the text of all pages joined by blank lines.
// Pages that fail or time out are logged and skipped.
func (p *FitzPDFExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()
	// a timed-out page may still be running inside MuPDF; Close must wait for it
	var inflight sync.WaitGroup
	defer inflight.Wait()

	numPages := doc.NumPage()

	type pageResult struct {
		text string
		err  error
	}

	var sb strings.Builder
	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)

		resultCh := make(chan pageResult, 1)
		inflight.Add(1)
		go func(idx int) {
			defer inflight.Done()
			t, e := doc.Text(idx)
			resultCh <- pageResult{text: t, err: e}
		}(pageNum)

		var text string
		select {
		case res := <-resultCh:
			text, err = res.text, res.err
		case <-time.After(p.pageTimeout):
			err = fmt.Errorf("timeout after %v", p.pageTimeout)
		case <-ctx.Done():
			return "", ctx.Err()
		}
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			continue
		}

		text = strings.TrimSpace(sanitizeText(text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// sanitizeText removes NUL, other control characters and lone surrogates, keeping tab, newline and carriage return.
func sanitizeText(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
			result.WriteRune(r)
		case r >= 0x20 && r < 0x7F:
			result.WriteRune(r)
		case r >= 0xA0 && (r < 0xD800 || r > 0xDFFF) && r != 0xFFFD:
			result.WriteRune(r)
		}
	}

	return result.String()
}
