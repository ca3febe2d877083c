package main

import (
	"errors"
	"fmt"
	"testing"

	apperrors "lector-pages/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("Book id must be a positive integer"), 2},
		{"wrapped validation", fmt.Errorf("search: %w", apperrors.NewValidationError("Query parameter 'q' is required")), 2},
		{"catalog", apperrors.NewCatalogLookupError("Failed to look up book in catalog", errors.New("dial")), 1},
		{"plain", errors.New("open book.pdf: no such file or directory"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
