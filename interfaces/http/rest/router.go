package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	querybus "contentedge/application/queries/bus"
	"contentedge/infrastructure/config"
	"contentedge/interfaces/http/rest/handlers"
	"contentedge/interfaces/http/rest/middleware"
	"contentedge/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	queryBus *querybus.QueryBus
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *observability.Collector
}

// NewRouter creates a new router instance
func NewRouter(
	queryBus *querybus.QueryBus,
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Collector,
) *Router {
	return &Router{
		queryBus: queryBus,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))

	// CORS configuration
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Metrics
	router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	// Sitemap: always dynamic, never cached at the framework layer
	sitemapHandler := handlers.NewSitemapHandler(rt.queryBus, rt.cfg, rt.logger)
	router.Get("/sitemap.xml", sitemapHandler.GetSitemap)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		layoutHandler := handlers.NewLayoutHandler(rt.queryBus, rt.cfg, rt.logger)
		r.Get("/layout", layoutHandler.GetLayout)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
