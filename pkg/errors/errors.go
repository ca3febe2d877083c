package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeMultipart     ErrorType = "multipart"
	ErrorTypeExtraction    ErrorType = "extraction"
	ErrorTypeNoPlainText   ErrorType = "no_plain_text"
	ErrorTypeCatalogLookup ErrorType = "catalog_lookup"
	ErrorTypeRemoteFetch   ErrorType = "remote_fetch"
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeTranslation   ErrorType = "translation"
	ErrorTypeTooLarge      ErrorType = "too_large"
	ErrorTypeInternal      ErrorType = "internal"
)

// AppError represents a structured application error.
// Message is safe to show to clients; Details and Cause are for logs only.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"-"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

func newError(t ErrorType, status int, message string, cause error) *AppError {
	e := &AppError{
		Type:       t,
		Message:    message,
		StatusCode: status,
		Cause:      cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewMultipartError is returned for malformed upload framing or undecodable text parts.
func NewMultipartError(message string, cause error) *AppError {
	return newError(ErrorTypeMultipart, http.StatusBadRequest, message, cause)
}

// NewExtractionError is returned when a document payload cannot be turned into text.
func NewExtractionError(message string, cause error) *AppError {
	return newError(ErrorTypeExtraction, http.StatusUnprocessableEntity, message, cause)
}

// NewNoPlainTextFormatError is returned when a catalog book offers no plain-text download.
func NewNoPlainTextFormatError(bookID int64, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeNoPlainText,
		Message:    "No plain text format available for this book",
		Details:    fmt.Sprintf("book_id=%d", bookID),
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewCatalogLookupError wraps failures talking to the book catalog.
func NewCatalogLookupError(message string, cause error) *AppError {
	return newError(ErrorTypeCatalogLookup, http.StatusBadGateway, message, cause)
}

// NewRemoteFetchError wraps failures downloading a book's text.
func NewRemoteFetchError(message string, cause error) *AppError {
	return newError(ErrorTypeRemoteFetch, http.StatusBadGateway, message, cause)
}

// NewConfigurationError is returned when a required setting is missing at call time.
func NewConfigurationError(message string, cause error) *AppError {
	return newError(ErrorTypeConfiguration, http.StatusServiceUnavailable, message, cause)
}

// NewTranslationError wraps failures from the translation provider.
func NewTranslationError(message string, cause error) *AppError {
	return newError(ErrorTypeTranslation, http.StatusBadGateway, message, cause)
}

// NewTooLargeError is returned when a request body exceeds its limit.
func NewTooLargeError(message string, cause error) *AppError {
	return newError(ErrorTypeTooLarge, http.StatusRequestEntityTooLarge, message, cause)
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return newError(ErrorTypeInternal, http.StatusInternalServerError, message, cause)
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}
