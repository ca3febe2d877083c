package domain

// DefaultSearchLang is the catalog language filter used when none is given.
const DefaultSearchLang = "de"

// Plain-text format keys offered by the catalog, in order of preference.
const (
	FormatKeyPlainTextUTF8 = "text/plain; charset=utf-8"
	FormatKeyPlainText     = "text/plain"
)

// CatalogAuthor is an author entry of a catalog book.
type CatalogAuthor struct {
	Name string `json:"name"`
}

// CatalogBook is the catalog provider's view of a book.
type CatalogBook struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Authors       []CatalogAuthor   `json:"authors"`
	Formats       map[string]string `json:"formats"`
	DownloadCount int64             `json:"download_count"`
}

// AuthorNames returns the author names in catalog order.
func (b *CatalogBook) AuthorNames() []string {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		names = append(names, a.Name)
	}
	return names
}

// BookSummary is a search result row returned to clients.
type BookSummary struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	DownloadCount int64    `json:"download_count"`
}

// CatalogSearchResponse is the body of a catalog search.
type CatalogSearchResponse struct {
	Results []CatalogBook `json:"results"`
}
