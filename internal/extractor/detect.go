package extractor

import (
	"bytes"
	"mime"
	"path/filepath"
	"strings"

	"lector-pages/internal/domain"
)

var extensionFormats = map[string]domain.Format{
	".pdf":      domain.FormatPDF,
	".epub":     domain.FormatEPUB,
	".txt":      domain.FormatText,
	".text":     domain.FormatText,
	".md":       domain.FormatMarkdown,
	".markdown": domain.FormatMarkdown,
}

var mimeFormats = map[string]domain.Format{
	"application/pdf":      domain.FormatPDF,
	"application/x-pdf":    domain.FormatPDF,
	"application/epub+zip": domain.FormatEPUB,
	"text/plain":           domain.FormatText,
	"text/markdown":        domain.FormatMarkdown,
	"text/x-markdown":      domain.FormatMarkdown,
}

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// DetectFormat picks a format from the file extension, then the MIME type, then magic bytes.
// Anything unrecognised is treated as PDF, the only format the upload form offers.
func DetectFormat(filename, contentType string, head []byte) domain.Format {
	if ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename))); ext != "" {
		if f, ok := extensionFormats[ext]; ok {
			return f
		}
	}

	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			if f, ok := mimeFormats[strings.ToLower(mediaType)]; ok {
				return f
			}
		}
	}

	switch {
	case bytes.HasPrefix(head, pdfMagic):
		return domain.FormatPDF
	case bytes.HasPrefix(head, zipMagic):
		return domain.FormatEPUB
	}

	return domain.FormatPDF
}
