package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lector-pages/internal/domain"
)

type MockLogger struct {
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.messages = append(m.messages, "INFO: "+msg+" "+fmt.Sprint(args))
}

func (m *MockLogger) has(prefix string) bool {
	for _, msg := range m.messages {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.messages = append(m.messages, "ERROR: "+msg+" - "+fmt.Sprint(err))
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.messages = append(m.messages, "DEBUG: "+msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.messages = append(m.messages, "WARN: "+msg)
}

type mockConfig struct {
	apiKey        string
	maxUploadSize int64
	pageSize      int
}

func newMockConfig() *mockConfig {
	return &mockConfig{maxUploadSize: 1 << 20, pageSize: domain.DefaultPageSize}
}

func (c *mockConfig) GetServerPort() string              { return "3000" }
func (c *mockConfig) GetLogLevel() string                { return "debug" }
func (c *mockConfig) GetMaxUploadSize() int64            { return c.maxUploadSize }
func (c *mockConfig) GetMaxRemoteTextSize() int64        { return 1 << 20 }
func (c *mockConfig) GetPageSize() int                   { return c.pageSize }
func (c *mockConfig) GetDeepLAPIKey() string             { return c.apiKey }
func (c *mockConfig) GetDeepLAPIURL() string             { return "http://deepl.invalid" }
func (c *mockConfig) GetGutendexURL() string             { return "http://gutendex.invalid" }
func (c *mockConfig) GetCatalogTimeout() time.Duration   { return time.Second }
func (c *mockConfig) GetTranslateTimeout() time.Duration { return time.Second }
func (c *mockConfig) GetFetchTimeout() time.Duration     { return time.Second }

type extractCall struct {
	data   []byte
	format domain.Format
}

type mockExtractor struct {
	text       string
	err        error
	calls      []extractCall
	detected   domain.Format
	detectArgs []string
}

func (m *mockExtractor) Extract(ctx context.Context, data []byte, format domain.Format) (string, error) {
	m.calls = append(m.calls, extractCall{data: data, format: format})
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m *mockExtractor) Detect(filename, contentType string, head []byte) domain.Format {
	m.detectArgs = []string{filename, contentType}
	if m.detected == "" {
		return domain.FormatPDF
	}
	return m.detected
}

func (m *mockExtractor) Formats() []domain.Format {
	return []domain.Format{domain.FormatPDF, domain.FormatText}
}

type mockCatalog struct {
	books     map[int64]*domain.CatalogBook
	bookErr   error
	searchErr error
	results   []domain.CatalogBook
	texts     map[string]string
	fetchErr  error
	fetched   []string
	lastQuery string
	lastLang  string
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		books: make(map[int64]*domain.CatalogBook),
		texts: make(map[string]string),
	}
}

func (m *mockCatalog) Search(ctx context.Context, query, lang string) ([]domain.CatalogBook, error) {
	m.lastQuery, m.lastLang = query, lang
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.results, nil
}

func (m *mockCatalog) Book(ctx context.Context, id int64) (*domain.CatalogBook, error) {
	if m.bookErr != nil {
		return nil, m.bookErr
	}
	book, ok := m.books[id]
	if !ok {
		return nil, domain.ErrUnexpectedStatus
	}
	return book, nil
}

func (m *mockCatalog) FetchText(ctx context.Context, url string) (string, error) {
	m.fetched = append(m.fetched, url)
	if m.fetchErr != nil {
		return "", m.fetchErr
	}
	return m.texts[url], nil
}

type mockProvider struct {
	translations []string
	err          error
	calls        int
	lastKey      string
	lastText     string
	lastTarget   string
}

func (m *mockProvider) Translate(ctx context.Context, apiKey, text, targetLang string) ([]string, error) {
	m.calls++
	m.lastKey, m.lastText, m.lastTarget = apiKey, text, targetLang
	if m.err != nil {
		return nil, m.err
	}
	return m.translations, nil
}
