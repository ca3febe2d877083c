package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cause := stderrors.New("boom")
	tests := []struct {
		name string
		err  *AppError
		want int
		typ  ErrorType
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest, ErrorTypeValidation},
		{"multipart", NewMultipartError("bad part", cause), http.StatusBadRequest, ErrorTypeMultipart},
		{"extraction", NewExtractionError("bad pdf", cause), http.StatusUnprocessableEntity, ErrorTypeExtraction},
		{"no plain text", NewNoPlainTextFormatError(7, cause), http.StatusUnprocessableEntity, ErrorTypeNoPlainText},
		{"catalog", NewCatalogLookupError("lookup", cause), http.StatusBadGateway, ErrorTypeCatalogLookup},
		{"fetch", NewRemoteFetchError("fetch", cause), http.StatusBadGateway, ErrorTypeRemoteFetch},
		{"configuration", NewConfigurationError("missing", nil), http.StatusServiceUnavailable, ErrorTypeConfiguration},
		{"translation", NewTranslationError("provider", cause), http.StatusBadGateway, ErrorTypeTranslation},
		{"too large", NewTooLargeError("big", cause), http.StatusRequestEntityTooLarge, ErrorTypeTooLarge},
		{"internal", NewInternalError("oops", cause), http.StatusInternalServerError, ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", tt.err.StatusCode, tt.want)
			}
			if !IsType(tt.err, tt.typ) {
				t.Errorf("IsType(%v) = false", tt.typ)
			}
		})
	}
}

func TestWrappedAppErrorIsFound(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := fmt.Errorf("import book 12: %w", NewCatalogLookupError("Failed to look up book", cause))

	appErr, ok := As(wrapped)
	if !ok || appErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected %d through wrapping, got %v", http.StatusBadGateway, appErr)
	}
	if !IsType(wrapped, ErrorTypeCatalogLookup) {
		t.Fatal("expected catalog lookup type through wrapping")
	}
	if !stderrors.Is(wrapped, cause) {
		t.Fatal("expected cause to be reachable with errors.Is")
	}
}

func TestNoPlainTextFormatError_KeepsCause(t *testing.T) {
	sentinel := stderrors.New("no plain text format available")
	err := NewNoPlainTextFormatError(22367, sentinel)

	if !stderrors.Is(err, sentinel) {
		t.Fatal("expected sentinel to be reachable with errors.Is")
	}
	if err.Details != "book_id=22367" {
		t.Fatalf("unexpected details %q", err.Details)
	}
}

func TestAs_PlainError(t *testing.T) {
	if appErr, ok := As(stderrors.New("plain")); ok || appErr != nil {
		t.Fatalf("expected no AppError, got %v", appErr)
	}
}

func TestError_IncludesDetails(t *testing.T) {
	err := NewExtractionError("Failed to extract text", stderrors.New("xref table broken"))
	if !strings.Contains(err.Error(), "xref table broken") {
		t.Fatalf("expected details in Error(), got %q", err.Error())
	}
	if err.Message != "Failed to extract text" {
		t.Fatalf("message should stay client-safe, got %q", err.Message)
	}
}
