package handlers

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"go_4_vocab_cards/internal/config"
	"go_4_vocab_cards/internal/metrics"
	"go_4_vocab_cards/internal/middleware"
	"go_4_vocab_cards/internal/service"
)

// NewRouter はミドルウェアとルートを組み立てたルーターを返します
func NewRouter(
	vocabularyService service.VocabularyService,
	statusService service.StatusService,
	m *metrics.Metrics,
	corsCfg config.CORSConfig,
	logger *slog.Logger,
) chi.Router {
	wordHandler := NewWordHandler(vocabularyService, logger)
	statusHandler := NewStatusHandler(statusService, logger)
	healthHandler := NewHealthHandler(statusService)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestMetrics(m))
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   corsCfg.AllowedMethods,
		AllowedHeaders:   corsCfg.AllowedHeaders,
		ExposedHeaders:   corsCfg.ExposedHeaders,
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
		Debug:            false,
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", healthHandler.Health)
	r.Method("GET", "/metrics", m.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/words", wordHandler.GetWords)
		r.Get("/status", statusHandler.GetStatus)
		r.Post("/status", statusHandler.PostStatus)
	})

	return r
}
