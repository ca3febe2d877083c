package domain

import "strings"

// Format is the tag used to pick a text extractor.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatEPUB     Format = "epub"
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

// ParseFormat normalizes a user supplied tag ("PDF", ".epub") into a Format.
func ParseFormat(s string) Format {
	s = strings.ToLower(strings.TrimSpace(s))
	return Format(strings.TrimPrefix(s, "."))
}

func (f Format) String() string {
	return string(f)
}
