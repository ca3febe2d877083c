package service

import (
	"context"
	"strings"

	"lector-pages/internal/domain"
	apperrors "lector-pages/pkg/errors"
)

type TranslationService struct {
	provider domain.TranslationProvider
	config   domain.Config
	logger   domain.Logger
}

func NewTranslationService(provider domain.TranslationProvider, config domain.Config, logger domain.Logger) *TranslationService {
	return &TranslationService{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// Translate sends one word to the provider. The credential is read per call,
// so a missing key fails the request without any outbound traffic.
func (s *TranslationService) Translate(ctx context.Context, query domain.TranslationQuery) (*domain.TranslationResult, error) {
	word := strings.TrimSpace(query.Word)
	if word == "" {
		return nil, apperrors.NewValidationError("Word is required")
	}

	apiKey := s.config.GetDeepLAPIKey()
	if apiKey == "" {
		s.logger.Warn("Translation requested without a configured API key")
		return nil, apperrors.NewConfigurationError("Translation service is not configured", domain.ErrMissingCredential)
	}

	target := query.Target()
	translations, err := s.provider.Translate(ctx, apiKey, word, target)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Error("Translation provider call failed", err, "target_lang", target)
		return nil, apperrors.NewTranslationError("Translation failed", err)
	}

	if len(translations) == 0 {
		return s.emptyTranslationPolicy(target), nil
	}
	return &domain.TranslationResult{Translation: translations[0]}, nil
}

// emptyTranslationPolicy answers with an empty translation when the provider returned none.
func (s *TranslationService) emptyTranslationPolicy(target string) *domain.TranslationResult {
	s.logger.Debug("Provider returned no translations", "target_lang", target)
	return &domain.TranslationResult{Translation: ""}
}
