// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cadastro_backend/internal/auth"
	"cadastro_backend/internal/config"
	"cadastro_backend/internal/file"
	"cadastro_backend/internal/jobs"
	"cadastro_backend/internal/middleware"
	"cadastro_backend/internal/shared"
	"cadastro_backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	userHandler *user.Handler
	authHandler *auth.Handler
	fileHandler *file.Handler

	// Jobs
	fileCleanupJob *jobs.FileCleanupJob
}

// NewServer wires middleware, routes and the http.Server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	userHandler *user.Handler,
	authHandler *auth.Handler,
	fileHandler *file.Handler,
	fileCleanupJob *jobs.FileCleanupJob,
	tokenService shared.TokenService,
	db *gorm.DB,
) (*Server, error) {
	if err := db.AutoMigrate(&file.File{}, &user.User{}); err != nil {
		return nil, fmt.Errorf("failed to run schema migration: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(tokenService, logger.Named("AuthMiddleware"))

	// --- Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	// Uploaded avatars are served straight from disk.
	router.Static("/files", cfg.FileStoragePath)

	root := router.Group("")
	userHandler.RegisterRoutes(root, authMW)
	authHandler.RegisterRoutes(root)
	fileHandler.RegisterRoutes(root, authMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:     httpServer,
		router:         router,
		cfg:            cfg,
		logger:         logger,
		userHandler:    userHandler,
		authHandler:    authHandler,
		fileHandler:    fileHandler,
		fileCleanupJob: fileCleanupJob,
	}, nil
}

// Start runs background jobs and the HTTP listener.
func (s *Server) Start() error {
	if s.fileCleanupJob != nil {
		if err := s.fileCleanupJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start file cleanup job", zap.Error(err))
		}
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	return nil
}

// Shutdown stops background jobs and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.fileCleanupJob != nil {
		s.fileCleanupJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
