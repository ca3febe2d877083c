package handler

import (
	"context"
	"io"
	"time"

	"lector-pages/internal/config"
	"lector-pages/internal/domain"
)

// Mock logger used by handler package tests.
type MockHandlerLogger struct{}

func NewMockHandlerLogger() domain.Logger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})             {}
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})             {}

type mockConfig struct {
	maxUploadSize int64
}

func (c *mockConfig) GetServerPort() string              { return "3000" }
func (c *mockConfig) GetLogLevel() string                { return "info" }
func (c *mockConfig) GetMaxUploadSize() int64            { return c.maxUploadSize }
func (c *mockConfig) GetMaxRemoteTextSize() int64        { return 1 << 20 }
func (c *mockConfig) GetPageSize() int                   { return domain.DefaultPageSize }
func (c *mockConfig) GetDeepLAPIKey() string             { return "" }
func (c *mockConfig) GetDeepLAPIURL() string             { return "" }
func (c *mockConfig) GetGutendexURL() string             { return "" }
func (c *mockConfig) GetCatalogTimeout() time.Duration   { return time.Second }
func (c *mockConfig) GetTranslateTimeout() time.Duration { return time.Second }
func (c *mockConfig) GetFetchTimeout() time.Duration     { return time.Second }

type MockIngestionService struct {
	uploadDoc   *domain.Document
	uploadErr   error
	uploadTitle string
	uploadBytes int
	importDoc   *domain.Document
	importErr   error
	importedID  int64
	results     []domain.BookSummary
	searchErr   error
	lastQuery   string
	lastLang    string
}

func (m *MockIngestionService) Upload(ctx context.Context, parts domain.PartReader) (*domain.Document, error) {
	for {
		part, err := parts.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return nil, err
		}
		switch part.FormName() {
		case "title":
			m.uploadTitle = string(data)
		case "file":
			m.uploadBytes = len(data)
		}
	}
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	return m.uploadDoc, nil
}

func (m *MockIngestionService) Import(ctx context.Context, bookID int64) (*domain.Document, error) {
	m.importedID = bookID
	if m.importErr != nil {
		return nil, m.importErr
	}
	return m.importDoc, nil
}

func (m *MockIngestionService) Search(ctx context.Context, query, lang string) ([]domain.BookSummary, error) {
	m.lastQuery, m.lastLang = query, lang
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.results, nil
}

func (m *MockIngestionService) Formats() []domain.Format {
	return []domain.Format{domain.FormatEPUB, domain.FormatPDF}
}

type MockTranslationService struct {
	result    *domain.TranslationResult
	err       error
	lastQuery domain.TranslationQuery
}

func (m *MockTranslationService) Translate(ctx context.Context, query domain.TranslationQuery) (*domain.TranslationResult, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func newTestContainer(ingestion *MockIngestionService, translation *MockTranslationService) *config.Container {
	return &config.Container{
		Config:             &mockConfig{maxUploadSize: 1 << 20},
		Logger:             NewMockHandlerLogger(),
		IngestionService:   ingestion,
		TranslationService: translation,
	}
}
