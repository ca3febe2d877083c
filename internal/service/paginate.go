package service

import (
	"strings"

	"lector-pages/internal/domain"
)

// Paginate splits text into pages of at most pageSize whitespace-separated words.
// Pages are rejoined with single spaces; original spacing and line breaks are not kept.
// Empty or whitespace-only text yields an empty, non-nil slice.
func Paginate(text string, pageSize int) []string {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	words := strings.Fields(text)
	pages := make([]string, 0, (len(words)+pageSize-1)/pageSize)
	for start := 0; start < len(words); start += pageSize {
		end := start + pageSize
		if end > len(words) {
			end = len(words)
		}
		pages = append(pages, strings.Join(words[start:end], " "))
	}
	return pages
}
