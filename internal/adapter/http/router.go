package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jokobim12/tefanote/internal/adapter/http/handler"
	"github.com/jokobim12/tefanote/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	StatsHandler       *handler.StatsHandler
	PresetHandler      *handler.PresetHandler
	AssistantHandler   *handler.AssistantHandler
	HealthHandler      *handler.HealthHandler

	Logger zerolog.Logger

	// CORSAllowedOrigins lists the browser origins the frontend is served
	// from.
	CORSAllowedOrigins []string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.NewRecoveryMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
			r.Delete("/", cfg.TransactionHandler.Clear)
			r.Get("/export", cfg.TransactionHandler.Export)
			r.Put("/{id}", cfg.TransactionHandler.Update)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/", cfg.StatsHandler.Get)
			r.Post("/reset", cfg.StatsHandler.Reset)
		})

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", cfg.PresetHandler.List)
			r.Post("/", cfg.PresetHandler.Create)
			r.Post("/reset", cfg.PresetHandler.Reset)
			r.Put("/{id}", cfg.PresetHandler.Update)
			r.Delete("/{id}", cfg.PresetHandler.Delete)
		})

		r.Route("/assistant", func(r chi.Router) {
			// Each chat turns into a paid upstream API call.
			limiter := middleware.NewRateLimiter(1, 5)
			r.Use(limiter.Limit)
			r.Post("/chat", cfg.AssistantHandler.Chat)
		})
	})

	return r
}
