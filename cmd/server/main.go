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

	"post-query-service/internal/config"
	"post-query-service/internal/handler"
	"post-query-service/internal/infrastructure/database"
	"post-query-service/internal/logger"
	"post-query-service/internal/metrics"
	"post-query-service/internal/middleware"
	"post-query-service/internal/repository"
	"post-query-service/internal/service"
	"post-query-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

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
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	tagRepo := repository.NewPostgresTagRepository(pool)
	authorRepo := repository.NewPostgresAuthorRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	viewRecorder := service.NewViewRecorder(postRepo, cfg.ViewWorkerCount, cfg.ViewQueueSize)
	postService := service.NewPostService(postRepo, categoryRepo, tagRepo, authorRepo, v, viewRecorder)

	// Initialize handlers
	postHandler := handler.NewPostHandler(postService)
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

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("", postHandler.ListPosts)
			posts.GET("/archives", postHandler.GetArchives)
			posts.GET("/search", postHandler.SearchPosts)
			posts.GET("/recommend", postHandler.ListRecommended)
			posts.GET("/:id", postHandler.GetPost)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
			posts.PUT("/:id/like", postHandler.LikePost)
		}

		v1.GET("/categories/:id/posts", postHandler.ListPostsByCategory)
		v1.GET("/tags/:id/posts", postHandler.ListPostsByTag)
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

	// Drain the HTTP server first so no handler can enqueue a view
	// record against a closed recorder
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Flush queued view records before the pool goes away
	logger.Info("Closing view recorder")
	viewRecorder.Close()

	logger.Info("Server exited")
}
