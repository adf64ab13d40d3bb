package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"sarita-industries/internal/config"
	custommiddleware "sarita-industries/internal/middleware"
	"sarita-industries/internal/repository"
	"sarita-industries/internal/service"
	"sarita-industries/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config      *config.Config
	logger      *zap.Logger
	db          *sql.DB
	redisClient *redis.Client
}

// NewServer wires the API. redisClient may be nil, in which case intake
// submissions are not rate limited.
func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB, redisClient *redis.Client) *Server {
	router := NewRouter(cfg, logger, db, redisClient)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:      cfg,
		logger:      logger,
		db:          db,
		redisClient: redisClient,
	}
}

// NewRouter builds the HTTP handler tree.
func NewRouter(cfg *config.Config, logger *zap.Logger, db *sql.DB, redisClient *redis.Client) chi.Router {
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(custommiddleware.DefaultMiddlewareStack(cfg.Server.TrustProxy)...)
	router.Use(middleware.Recoverer)
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.IsDevelopment()))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = "down"
				custommiddleware.RespondWithJSON(w, http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "up"
		}
		custommiddleware.RespondWithJSON(w, http.StatusOK, status)
	})

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	contactRepo := repository.NewContactRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)

	// Initialize services
	productService := service.NewProductService(productRepo, service.DefaultCatalog(), logger)
	intakeService := service.NewIntakeService(contactRepo, quoteRepo, logger)
	statsService := service.NewStatsService(cfg.Stats)

	// Initialize handlers
	productHandler := transport.NewProductHandler(productService, logger)
	intakeHandler := transport.NewIntakeHandler(intakeService, logger)
	siteHandler := transport.NewSiteHandler(statsService)

	limiter := func(next http.Handler) http.Handler { return next }
	if redisClient != nil {
		limiter = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.IntakeRequests,
			Window:            cfg.RateLimit.IntakeWindow,
			KeyPrefix:         "ratelimit:intake",
		}, logger)
	}

	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	requireAdmin := custommiddleware.RequireAdmin(logger)
	adminAuth := func(next http.Handler) http.Handler {
		return authMiddleware(requireAdmin(next))
	}

	// Register routes
	siteHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	intakeHandler.RegisterRoutes(router, limiter, adminAuth)

	return router
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
