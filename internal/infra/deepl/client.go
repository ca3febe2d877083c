// Package deepl is a minimal client for the DeepL text translation API.
package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"lector-pages/internal/domain"
)

// Client implements domain.TranslationProvider
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
}

type translateRequest struct {
	Text       []string `json:"text"`
	TargetLang string   `json:"target_lang"`
}

type translateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// NewClient creates a translation client from configuration
func NewClient(config domain.Config, logger domain.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(config.GetDeepLAPIURL(), "/"),
		httpClient: &http.Client{Timeout: config.GetTranslateTimeout()},
		logger:     logger,
	}
}

// Translate sends text to the provider and returns the translations in order.
func (c *Client) Translate(ctx context.Context, apiKey, text, targetLang string) ([]string, error) {
	payload, err := json.Marshal(translateRequest{
		Text:       []string{text},
		TargetLang: targetLang,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("translate: %w %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	var res translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	out := make([]string, 0, len(res.Translations))
	for _, t := range res.Translations {
		out = append(out, t.Text)
	}
	c.logger.Debug("Translation received", "target_lang", targetLang, "count", len(out))
	return out, nil
}
