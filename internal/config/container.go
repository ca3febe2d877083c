package config

import (
	"lector-pages/internal/domain"
	"lector-pages/internal/extractor"
	"lector-pages/internal/infra/deepl"
	"lector-pages/internal/infra/gutendex"
	"lector-pages/internal/service"
	"lector-pages/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config              domain.Config
	Logger              domain.Logger
	Extractors          *extractor.Registry
	CatalogClient       domain.CatalogClient
	TranslationProvider domain.TranslationProvider
	IngestionService    domain.IngestionService
	TranslationService  domain.TranslationService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWithLogger(NewConfig(), nil)
}

// NewContainerWithLogger wires the container around an existing config.
// A nil logger is replaced by one at the configured level.
func NewContainerWithLogger(config *AppConfig, appLogger domain.Logger) *Container {
	if appLogger == nil {
		appLogger = logger.NewLogger(config.GetLogLevel())
	}

	registry := extractor.NewDefaultRegistry(appLogger)
	catalog := gutendex.NewClient(config, appLogger)
	translator := deepl.NewClient(config, appLogger)

	return &Container{
		Config:              config,
		Logger:              appLogger,
		Extractors:          registry,
		CatalogClient:       catalog,
		TranslationProvider: translator,
		IngestionService:    service.NewIngestionService(registry, catalog, config, appLogger),
		TranslationService:  service.NewTranslationService(translator, config, appLogger),
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
