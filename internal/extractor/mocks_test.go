package extractor

import (
	"context"

	"lector-pages/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...interface{})             {}
func (nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (nopLogger) Debug(msg string, fields ...interface{})            {}
func (nopLogger) Warn(msg string, fields ...interface{})             {}

type stubExtractor struct {
	format domain.Format
	text   string
	err    error
	calls  int
}

func (s *stubExtractor) Format() domain.Format { return s.format }

func (s *stubExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}
