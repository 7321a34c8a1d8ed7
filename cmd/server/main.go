package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shashank123r/Creator-Chart-CMS/internal/classifier"
	"github.com/shashank123r/Creator-Chart-CMS/internal/config"
	"github.com/shashank123r/Creator-Chart-CMS/internal/handler"
	"github.com/shashank123r/Creator-Chart-CMS/internal/infrastructure/database"
	"github.com/shashank123r/Creator-Chart-CMS/internal/logger"
	"github.com/shashank123r/Creator-Chart-CMS/internal/metrics"
	"github.com/shashank123r/Creator-Chart-CMS/internal/middleware"
	"github.com/shashank123r/Creator-Chart-CMS/internal/repository"
	"github.com/shashank123r/Creator-Chart-CMS/internal/seed"
	"github.com/shashank123r/Creator-Chart-CMS/internal/service"
	"github.com/shashank123r/Creator-Chart-CMS/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	// Wire up the storage backend
	var (
		contentRepo  repository.ContentRepository
		creatorRepo  repository.CreatorRepository
		teamRepo     repository.TeamRepository
		activityRepo repository.ActivityRepository
		pool         *pgxpool.Pool
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		poolCfg := database.PoolConfig{
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
		}

		if err := database.MigrateUp(poolCfg, "migrations"); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}

		pool, err = database.NewPostgres(context.Background(), poolCfg)
		if err != nil {
			logger.Fatal("Failed to connect to database",
				slog.String("error", err.Error()))
		}
		defer pool.Close()

		// Track pool stats in Prometheus
		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()

		contentRepo = repository.NewPostgresContentRepository(pool)
		creatorRepo = repository.NewPostgresCreatorRepository(pool)
		teamRepo = repository.NewPostgresTeamRepository(pool)
		activityRepo = repository.NewPostgresActivityRepository(pool)

	default:
		store := repository.NewMemoryStore()
		store.SetTeam(seed.Roster)
		if cfg.SeedSampleData {
			if err := seed.SampleData(context.Background(), store); err != nil {
				logger.Fatal("Failed to seed sample data",
					slog.String("error", err.Error()))
			}
		}
		contentRepo = store.Content()
		creatorRepo = store.Creators()
		teamRepo = store.Team()
		activityRepo = store.Activity()
	}

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	analysisService := service.NewAnalysisService(
		classifier.NewAnalyzer(),
		classifier.NewCreatorClassifier(),
		cfg.AnalysisStepDelay,
		cfg.AnalysisTimeout,
	)
	contentService := service.NewContentService(contentRepo, activityRepo, analysisService, v)
	intakeService := service.NewIntakeService(creatorRepo, activityRepo, analysisService, v)
	analyticsService := service.NewAnalyticsService(contentRepo, teamRepo)
	exportService := service.NewExportService(contentRepo)

	// Initialize handlers
	contentHandler := handler.NewContentHandler(contentService)
	creatorHandler := handler.NewCreatorHandler(intakeService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	teamHandler := handler.NewTeamHandler(analyticsService)
	activityHandler := handler.NewActivityHandler(activityRepo)
	exportHandler := handler.NewExportHandler(exportService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		content := v1.Group("/content")
		{
			content.POST("", contentHandler.CreateContent)
			content.GET("", contentHandler.ListContent)
			content.GET("/export", exportHandler.ExportContent)
			content.GET("/:id", contentHandler.GetContent)
			content.PATCH("/:id/status", contentHandler.TransitionContent)
			content.POST("/:id/analyze", contentHandler.AnalyzeContent)
		}

		creators := v1.Group("/creators")
		{
			creators.POST("", creatorHandler.SubmitIntake)
			creators.GET("", creatorHandler.ListCreators)
			creators.GET("/options", creatorHandler.IntakeOptions)
			creators.GET("/:id", creatorHandler.GetCreator)
		}

		v1.GET("/team", teamHandler.ListTeam)
		v1.GET("/dashboard", analyticsHandler.Dashboard)
		v1.GET("/analytics", analyticsHandler.Report)
		v1.GET("/activity", activityHandler.ListActivity)
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
			slog.String("port", cfg.ServerPort),
			slog.String("storage", cfg.Storage))
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
