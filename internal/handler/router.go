package handler

import (
	"net/http"

	"lector-pages/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const serviceName = "lector-pages"

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()
	logger := container.GetLogger()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
	}).Methods(http.MethodGet)

	documentHandler := NewDocumentHandler(container.IngestionService, container.GetConfig(), logger)
	catalogHandler := NewCatalogHandler(container.IngestionService, logger)
	translationHandler := NewTranslationHandler(container.TranslationService, logger)

	// Routes stay on the root router; a subrouter reports method mismatches as 404.
	router.HandleFunc("/api/upload", documentHandler.Upload).Methods(http.MethodPost)
	router.HandleFunc("/api/formats", documentHandler.Formats).Methods(http.MethodGet)
	router.HandleFunc("/api/translate", translationHandler.Translate).Methods(http.MethodPost)
	router.HandleFunc("/api/gutenberg/search", catalogHandler.Search).Methods(http.MethodGet)
	router.HandleFunc("/api/gutenberg/import", documentHandler.Import).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "Route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	})

	// The reader UI may be served from any origin.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	})

	return Chain(router,
		c.Handler,
		RequestIDMiddleware,
		LoggingMiddleware(logger),
		RecoverMiddleware(logger),
	)
}
