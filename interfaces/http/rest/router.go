package rest

import (
	"net/http"

	"github.com/jn0w/Lindsey/application/ports"
	"github.com/jn0w/Lindsey/application/services"
	"github.com/jn0w/Lindsey/infrastructure/config"
	"github.com/jn0w/Lindsey/interfaces/http/rest/handlers"
	"github.com/jn0w/Lindsey/interfaces/http/rest/middleware"
	"github.com/jn0w/Lindsey/interfaces/web"
	"github.com/jn0w/Lindsey/pkg/auth"
	"github.com/jn0w/Lindsey/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg     *config.Config
	service *services.MemoryService
	repo    ports.MemoryRepository
	tokens  *auth.TokenIssuer
	metrics *observability.Collector
	pages   *web.Handler
	logger  *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	service *services.MemoryService,
	repo ports.MemoryRepository,
	tokens *auth.TokenIssuer,
	metrics *observability.Collector,
	pages *web.Handler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:     cfg,
		service: service,
		repo:    repo,
		tokens:  tokens,
		metrics: metrics,
		pages:   pages,
		logger:  logger,
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

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Every request passes through the session gate; the gate itself
	// knows which paths stay reachable without a cookie.
	router.Use(middleware.SessionGate(rt.tokens, rt.logger))

	// Health check and metrics
	router.Get("/health", rt.healthCheck)
	router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	// Authentication endpoints
	authHandler := handlers.NewAuthHandler(rt.cfg.LoginDay, rt.cfg.LoginMonth, rt.tokens, rt.logger)
	router.Post("/auth/login", authHandler.Login)
	router.Get("/auth/logout", authHandler.Logout)

	// Memory endpoints
	memoryHandler := handlers.NewMemoryHandler(rt.service, rt.logger)
	router.Route("/memories", func(r chi.Router) {
		r.Get("/", memoryHandler.ListMemories)
		r.Post("/", memoryHandler.CreateMemory)
		r.Get("/{id}", memoryHandler.GetMemory)
		r.Put("/{id}", memoryHandler.UpdateMemory)
		r.Delete("/{id}", memoryHandler.DeleteMemory)
	})
	router.Get("/memory-of-the-day", memoryHandler.MemoryOfTheDay)

	// Store connectivity probe
	diagnostics := handlers.NewDiagnosticsHandler(rt.repo, rt.logger)
	router.Get("/mongodb", diagnostics.PingStore)

	// Presentation pages and static assets
	rt.pages.Register(router)

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
