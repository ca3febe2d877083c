// Package gutendex is a client for the Gutendex Project Gutenberg catalog API.
package gutendex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lector-pages/internal/domain"
)

// Client implements domain.CatalogClient
type Client struct {
	baseURL     string
	httpClient  *http.Client
	fetchClient *http.Client
	maxTextSize int64
	logger      domain.Logger
}

// NewClient creates a catalog client from configuration
func NewClient(config domain.Config, logger domain.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(config.GetGutendexURL(), "/"),
		httpClient:  &http.Client{Timeout: config.GetCatalogTimeout()},
		fetchClient: &http.Client{Timeout: config.GetFetchTimeout()},
		maxTextSize: config.GetMaxRemoteTextSize(),
		logger:      logger,
	}
}

// Search lists books matching query in the given language
func (c *Client) Search(ctx context.Context, query, lang string) ([]domain.CatalogBook, error) {
	params := url.Values{}
	params.Set("languages", lang)
	params.Set("search", query)

	var res domain.CatalogSearchResponse
	if err := c.getJSON(ctx, c.baseURL+"/books/?"+params.Encode(), &res); err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	return res.Results, nil
}

// Book returns the catalog record for one book
func (c *Client) Book(ctx context.Context, id int64) (*domain.CatalogBook, error) {
	var book domain.CatalogBook
	if err := c.getJSON(ctx, fmt.Sprintf("%s/books/%d", c.baseURL, id), &book); err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &book, nil
}

// FetchText downloads a book text. The response must be text/* (or untyped) and at most maxTextSize bytes.
func (c *Client) FetchText(ctx context.Context, textURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, textURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	start := time.Now()
	resp, err := c.fetchClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch text: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch text: %w %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || !strings.HasPrefix(strings.ToLower(mediaType), "text/") {
			return "", fmt.Errorf("fetch text: %w (%s)", domain.ErrNonTextResponse, ct)
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxTextSize+1))
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	if int64(len(body)) > c.maxTextSize {
		return "", fmt.Errorf("fetch text: %w (%d bytes)", domain.ErrRemoteTextTooLarge, c.maxTextSize)
	}

	c.logger.Debug("Catalog text fetched", "url", textURL, "bytes", len(body), "took", time.Since(start))

	body = bytes.TrimPrefix(body, []byte("\xef\xbb\xbf"))
	return string(bytes.ToValidUTF8(body, nil)), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("Catalog request", "url", endpoint, "status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
