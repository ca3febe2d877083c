package domain

import (
	"context"
	"mime/multipart"
	"time"
)

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxUploadSize() int64
	GetMaxRemoteTextSize() int64
	GetPageSize() int
	GetDeepLAPIKey() string
	GetDeepLAPIURL() string
	GetGutendexURL() string
	GetCatalogTimeout() time.Duration
	GetTranslateTimeout() time.Duration
	GetFetchTimeout() time.Duration
}

// TextExtractor converts a payload of one format into plain text.
type TextExtractor interface {
	Format() Format
	Extract(ctx context.Context, data []byte) (string, error)
}

// DocumentExtractor dispatches extraction by format tag.
type DocumentExtractor interface {
	Extract(ctx context.Context, data []byte, format Format) (string, error)
	Detect(filename, contentType string, head []byte) Format
	Formats() []Format
}

// CatalogClient talks to the remote book catalog.
type CatalogClient interface {
	Search(ctx context.Context, query, lang string) ([]CatalogBook, error)
	Book(ctx context.Context, id int64) (*CatalogBook, error)
	FetchText(ctx context.Context, url string) (string, error)
}

// TranslationProvider talks to the remote translation API.
type TranslationProvider interface {
	Translate(ctx context.Context, apiKey, text, targetLang string) ([]string, error)
}

// PartReader yields multipart parts in arrival order. *multipart.Reader satisfies it.
type PartReader interface {
	NextPart() (*multipart.Part, error)
}

// IngestionService turns uploads and catalog books into paginated documents.
type IngestionService interface {
	Upload(ctx context.Context, parts PartReader) (*Document, error)
	Import(ctx context.Context, bookID int64) (*Document, error)
	Search(ctx context.Context, query, lang string) ([]BookSummary, error)
	Formats() []Format
}

// TranslationService translates single words.
type TranslationService interface {
	Translate(ctx context.Context, query TranslationQuery) (*TranslationResult, error)
}
