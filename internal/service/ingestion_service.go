package service

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode/utf8"

	"lector-pages/internal/domain"
	apperrors "lector-pages/pkg/errors"
)

const (
	titleFieldName = "title"
	fileFieldName  = "file"

	// maxTitleSize bounds the title part; anything longer is not a title.
	maxTitleSize = 64 << 10
	sniffLen     = 512
)

// plainTextPreference is the order in which catalog formats are tried.
var plainTextPreference = []string{
	domain.FormatKeyPlainTextUTF8,
	domain.FormatKeyPlainText,
}

type IngestionService struct {
	extractor domain.DocumentExtractor
	catalog   domain.CatalogClient
	config    domain.Config
	logger    domain.Logger
}

func NewIngestionService(
	extractor domain.DocumentExtractor,
	catalog domain.CatalogClient,
	config domain.Config,
	logger domain.Logger,
) *IngestionService {
	return &IngestionService{
		extractor: extractor,
		catalog:   catalog,
		config:    config,
		logger:    logger,
	}
}

// Formats lists the document formats uploads may use.
func (s *IngestionService) Formats() []domain.Format {
	return s.extractor.Formats()
}

// Upload consumes multipart parts in arrival order and builds a document.
// A "title" part replaces the default title, a "file" part is extracted and
// paginated, and any other part is skipped.
func (s *IngestionService) Upload(ctx context.Context, parts domain.PartReader) (*domain.Document, error) {
	title := domain.DefaultTitle
	var pages []string
	sawFile := false

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		part, err := parts.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, s.partError("Malformed multipart request", err)
		}

		switch part.FormName() {
		case titleFieldName:
			title, err = s.readTitle(part)
		case fileFieldName:
			sawFile = true
			pages, err = s.readFile(ctx, part)
		default:
			s.logger.Debug("Skipping unknown multipart field", "field", part.FormName())
			_, err = io.Copy(io.Discard, part)
			if err != nil {
				err = s.partError("Malformed multipart request", err)
			}
		}
		part.Close()
		if err != nil {
			return nil, err
		}
	}

	if !sawFile {
		return s.noFilePolicy(title), nil
	}

	doc := domain.NewDocument(title, pages)
	s.logger.Info("Document uploaded", "title", title, "pages", len(doc.Pages), "words", doc.WordCount())
	return doc, nil
}

// noFilePolicy handles an upload that carried no file part: the request still
// succeeds with the resolved title and no pages.
func (s *IngestionService) noFilePolicy(title string) *domain.Document {
	s.logger.Debug("Upload had no file part, returning empty document", "title", title)
	return domain.NewDocument(title, nil)
}

func (s *IngestionService) readTitle(part io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(part, maxTitleSize+1))
	if err != nil {
		return "", s.partError("Failed to read title field", err)
	}
	if len(data) > maxTitleSize {
		return "", apperrors.NewMultipartError("Title field is too long", nil)
	}
	if !utf8.Valid(data) {
		return "", apperrors.NewMultipartError("Title field is not valid UTF-8 text", nil)
	}
	return string(data), nil
}

func (s *IngestionService) readFile(ctx context.Context, part *multipart.Part) ([]string, error) {
	limit := s.config.GetMaxUploadSize()
	data, err := io.ReadAll(io.LimitReader(part, limit+1))
	if err != nil {
		return nil, s.partError("Failed to read file field", err)
	}
	if int64(len(data)) > limit {
		return nil, apperrors.NewTooLargeError("Uploaded file is too large", nil)
	}

	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	format := s.extractor.Detect(part.FileName(), part.Header.Get("Content-Type"), head)
	s.logger.Debug("Extracting uploaded file", "filename", part.FileName(), "format", format, "bytes", len(data))

	text, err := s.extractor.Extract(ctx, data, format)
	if err != nil {
		return nil, err
	}
	return Paginate(text, s.config.GetPageSize()), nil
}

// partError maps a multipart read failure to the matching application error.
func (s *IngestionService) partError(message string, err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.NewTooLargeError("Request body is too large", err)
	}
	return apperrors.NewMultipartError(message, err)
}

// Import fetches a catalog book's plain text and paginates it.
func (s *IngestionService) Import(ctx context.Context, bookID int64) (*domain.Document, error) {
	if bookID <= 0 {
		return nil, apperrors.NewValidationError("Book id must be a positive integer")
	}

	book, err := s.catalog.Book(ctx, bookID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Error("Catalog lookup failed", err, "book_id", bookID)
		return nil, apperrors.NewCatalogLookupError("Failed to look up book in catalog", err)
	}

	textURL, ok := SelectPlainTextURL(book.Formats)
	if !ok {
		s.logger.Warn("Book has no plain text format", "book_id", bookID, "formats", len(book.Formats))
		return nil, apperrors.NewNoPlainTextFormatError(bookID, domain.ErrNoPlainTextFormat)
	}

	text, err := s.catalog.FetchText(ctx, textURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Error("Book text download failed", err, "book_id", bookID, "url", textURL)
		return nil, apperrors.NewRemoteFetchError("Failed to download book text", err)
	}

	doc := domain.NewDocument(book.Title, Paginate(text, s.config.GetPageSize()))
	s.logger.Info("Book imported", "book_id", bookID, "title", book.Title, "pages", len(doc.Pages), "words", doc.WordCount())
	return doc, nil
}

// SelectPlainTextURL picks the download URL of the preferred plain-text format.
func SelectPlainTextURL(formats map[string]string) (string, bool) {
	for _, key := range plainTextPreference {
		if url, ok := formats[key]; ok && url != "" {
			return url, true
		}
	}
	return "", false
}

// Search proxies a catalog search and flattens each book to a summary row.
func (s *IngestionService) Search(ctx context.Context, query, lang string) ([]domain.BookSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("Query parameter 'q' is required")
	}
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = domain.DefaultSearchLang
	}

	books, err := s.catalog.Search(ctx, query, lang)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Error("Catalog search failed", err, "query", query, "lang", lang)
		return nil, apperrors.NewCatalogLookupError("Failed to search catalog", err)
	}

	results := make([]domain.BookSummary, 0, len(books))
	for _, book := range books {
		results = append(results, domain.BookSummary{
			ID:            book.ID,
			Title:         book.Title,
			Authors:       book.AuthorNames(),
			DownloadCount: book.DownloadCount,
		})
	}
	s.logger.Debug("Catalog search", "query", query, "lang", lang, "results", len(results))
	return results, nil
}
