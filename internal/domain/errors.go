package domain

import "errors"

// Domain errors
var (
	ErrEmptyDocument      = errors.New("empty document")
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrNoPlainTextFormat  = errors.New("no plain text format available")
	ErrMissingCredential  = errors.New("translation credential not configured")
	ErrNonTextResponse    = errors.New("non-text response")
	ErrUnexpectedStatus   = errors.New("unexpected status")
	ErrRemoteTextTooLarge = errors.New("remote text exceeds size limit")
)
