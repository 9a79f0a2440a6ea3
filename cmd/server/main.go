package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-cms/internal/config"
	"blog-cms/internal/handler"
	"blog-cms/internal/infrastructure/database"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
	"blog-cms/internal/middleware"
	"blog-cms/internal/repository"
	"blog-cms/internal/service"
	"blog-cms/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	setupLogger(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	postRepo := repository.NewPostgresPostRepository(pool)
	userRepo := repository.NewPostgresUserRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	postService := service.NewPostService(postRepo, v, service.PostServiceOptions{
		DefaultAuthor:   cfg.DefaultAuthor,
		DefaultCategory: cfg.DefaultCategory,
		WordsPerMinute:  cfg.WordsPerMinute,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	})
	authService := service.NewAuthService(userRepo, v, cfg.JWTSecret, cfg.JWTTTL)

	// Initialize handlers
	postHandler := handler.NewPostHandler(postService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	{
		// Public reads
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:idOrSlug", postHandler.GetPost)
		api.GET("/categories", postHandler.ListCategories)
		api.GET("/stats", postHandler.GetStats)

		// Accounts
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Authenticated routes
		auth := api.Group("")
		auth.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			auth.POST("/posts", postHandler.CreatePost)
			auth.PUT("/posts/:idOrSlug", postHandler.UpdatePost)
			auth.DELETE("/posts/:idOrSlug", postHandler.DeletePost)
			auth.GET("/profile", authHandler.GetProfile)
			auth.PUT("/profile", authHandler.UpdateProfile)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// setupLogger applies the configured log level to the process-wide logger.
func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	logger.SetLogger(slog.New(handler))
}
