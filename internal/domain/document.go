package domain

// DefaultPageSize is the number of words per page.
const DefaultPageSize = 300

// DefaultTitle is used when an upload carries no title part.
const DefaultTitle = "Untitled"

// Document is a paginated text ready for the reader UI.
// It is built once per request and never mutated afterwards.
type Document struct {
	Title string   `json:"title"`
	Pages []string `json:"pages"`
}

// NewDocument builds a Document. A nil pages slice is normalized so the JSON is [] not null.
func NewDocument(title string, pages []string) *Document {
	if pages == nil {
		pages = []string{}
	}
	return &Document{Title: title, Pages: pages}
}

// WordCount returns the number of words across all pages.
func (d *Document) WordCount() int {
	n := 0
	for _, p := range d.Pages {
		n += countWords(p)
	}
	return n
}

// pages are single-space joined, so counting separators is enough
func countWords(page string) int {
	if page == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(page); i++ {
		if page[i] == ' ' {
			n++
		}
	}
	return n
}
