package config

import (
	"os"
	"strconv"
	"time"

	"lector-pages/internal/domain"
)

const (
	defaultPort              = "3000"
	defaultMaxUploadSize     = 100 * 1024 * 1024 // 100MB
	defaultMaxRemoteTextSize = 50 * 1024 * 1024
	defaultDeepLAPIURL       = "https://api-free.deepl.com"
	defaultGutendexURL       = "https://gutendex.com"
	defaultCatalogTimeout    = 30 * time.Second
	defaultTranslateTimeout  = 15 * time.Second
	defaultFetchTimeout      = 60 * time.Second
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort        string
	LogLevel          string
	MaxUploadSize     int64
	MaxRemoteTextSize int64
	PageSize          int
	DeepLAPIKey       string
	DeepLAPIURL       string
	GutendexURL       string
	CatalogTimeout    time.Duration
	TranslateTimeout  time.Duration
	FetchTimeout      time.Duration
}

// NewConfig creates a new configuration instance from the environment
func NewConfig() *AppConfig {
	return &AppConfig{
		// PaaS hosts provide PORT; BACKEND_PORT is kept for local/dev compatibility.
		ServerPort:        getEnvOrDefault("PORT", getEnvOrDefault("BACKEND_PORT", defaultPort)),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		MaxUploadSize:     getEnvInt64OrDefault("MAX_UPLOAD_SIZE", defaultMaxUploadSize),
		MaxRemoteTextSize: getEnvInt64OrDefault("MAX_REMOTE_TEXT_SIZE", defaultMaxRemoteTextSize),
		PageSize:          getEnvPositiveIntOrDefault("PAGE_SIZE", domain.DefaultPageSize),
		DeepLAPIKey:       os.Getenv("DEEPL_API_KEY"),
		DeepLAPIURL:       getEnvOrDefault("DEEPL_API_URL", defaultDeepLAPIURL),
		GutendexURL:       getEnvOrDefault("GUTENDEX_URL", defaultGutendexURL),
		CatalogTimeout:    getEnvDurationOrDefault("CATALOG_TIMEOUT", defaultCatalogTimeout),
		TranslateTimeout:  getEnvDurationOrDefault("TRANSLATE_TIMEOUT", defaultTranslateTimeout),
		FetchTimeout:      getEnvDurationOrDefault("FETCH_TIMEOUT", defaultFetchTimeout),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxUploadSize returns the maximum accepted upload body size
func (c *AppConfig) GetMaxUploadSize() int64 {
	return c.MaxUploadSize
}

// GetMaxRemoteTextSize returns the maximum size of a downloaded book text
func (c *AppConfig) GetMaxRemoteTextSize() int64 {
	return c.MaxRemoteTextSize
}

// GetPageSize returns the number of words per page
func (c *AppConfig) GetPageSize() int {
	return c.PageSize
}

// GetDeepLAPIKey returns the translation credential. Empty when not configured.
func (c *AppConfig) GetDeepLAPIKey() string {
	return c.DeepLAPIKey
}

// GetDeepLAPIURL returns the translation API base URL
func (c *AppConfig) GetDeepLAPIURL() string {
	return c.DeepLAPIURL
}

// GetGutendexURL returns the catalog API base URL
func (c *AppConfig) GetGutendexURL() string {
	return c.GutendexURL
}

// GetCatalogTimeout bounds catalog search and lookup calls
func (c *AppConfig) GetCatalogTimeout() time.Duration {
	return c.CatalogTimeout
}

// GetTranslateTimeout bounds translation calls
func (c *AppConfig) GetTranslateTimeout() time.Duration {
	return c.TranslateTimeout
}

// GetFetchTimeout bounds book text downloads
func (c *AppConfig) GetFetchTimeout() time.Duration {
	return c.FetchTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvPositiveIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDurationOrDefault accepts Go durations ("15s") or plain seconds ("15").
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
