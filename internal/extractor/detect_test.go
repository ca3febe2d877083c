package extractor

import (
	"testing"

	"lector-pages/internal/domain"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		head        []byte
		want        domain.Format
	}{
		{name: "pdf extension", filename: "Buch.PDF", want: domain.FormatPDF},
		{name: "epub extension", filename: "novel.epub", want: domain.FormatEPUB},
		{name: "markdown extension", filename: "notes.markdown", want: domain.FormatMarkdown},
		{name: "txt extension wins over content type", filename: "a.txt", contentType: "application/pdf", want: domain.FormatText},
		{name: "content type with params", filename: "blob", contentType: "text/plain; charset=utf-8", want: domain.FormatText},
		{name: "epub content type", contentType: "application/epub+zip", want: domain.FormatEPUB},
		{name: "pdf magic", contentType: "application/octet-stream", head: []byte("%PDF-1.7\n"), want: domain.FormatPDF},
		{name: "zip magic", filename: "upload", head: []byte("PK\x03\x04rest"), want: domain.FormatEPUB},
		{name: "unknown defaults to pdf", filename: "file.bin", head: []byte("????"), want: domain.FormatPDF},
		{name: "nothing at all", want: domain.FormatPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.filename, tt.contentType, tt.head); got != tt.want {
				t.Errorf("DetectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
