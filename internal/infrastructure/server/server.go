package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vaultview/backend/internal/api/http"
	"github.com/vaultview/backend/internal/api/middleware"
	"github.com/vaultview/backend/internal/api/ws"
	"github.com/vaultview/backend/internal/domain/seed"
	"github.com/vaultview/backend/internal/domain/vfs"
	"github.com/vaultview/backend/internal/infrastructure/config"
	"github.com/vaultview/backend/internal/infrastructure/logging"
	"github.com/vaultview/backend/internal/infrastructure/monitoring"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	store   *vfs.Store
	hub     *ws.Hub
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing VaultView Server",
		zap.String("port", cfg.Server.Port),
		zap.String("host", cfg.Server.Host),
	)

	// Initialize metrics first (needed by the store)
	metrics := monitoring.NewMetrics()
	logger.Info("Performance monitoring initialized")

	// Initialize the filesystem store
	store := vfs.New().WithMetrics(metrics)
	logger.Info("Filesystem store initialized", zap.String("root_id", store.RootID()))

	// Seed demo content
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(store, logger)
		var err error
		if cfg.Seed.ManifestPath != "" {
			err = seeder.SeedFile(cfg.Seed.ManifestPath)
		} else {
			err = seeder.SeedDefault()
		}
		if err != nil {
			logger.Warn("Failed to seed demo content", zap.Error(err))
		}
	}

	// Event hub for connected clients
	hub := ws.NewHub()

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := http.NewHandlers(store, hub, logger, cfg.Upload.MaxBytes)
	wsHandler := ws.NewHandler(store, hub, logger, metrics)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Tree navigation and mutation
	router.GET("/folders/:id/children", handlers.ListChildren)
	router.POST("/folders", handlers.CreateFolder)
	router.POST("/files", handlers.CreateFile)
	router.POST("/files/upload", handlers.Upload)
	router.POST("/import", handlers.Import)
	router.GET("/items/:id", handlers.GetItem)
	router.PATCH("/items/:id", handlers.Rename)
	router.DELETE("/items/:id", handlers.Delete)

	// File annotations
	router.GET("/files/:id/comments", handlers.ListComments)
	router.POST("/files/:id/comments", handlers.AddComment)
	router.GET("/files/:id/properties", handlers.ListProperties)
	router.POST("/files/:id/properties", handlers.AddProperty)

	// Search and export
	router.GET("/search", handlers.Search)
	router.GET("/tree/export", handlers.ExportTree)
	router.GET("/stats", handlers.Stats)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		store:   store,
		hub:     hub,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.logger.Sync()
	return nil
}
