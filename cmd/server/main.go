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

	"peer-review-workflow/internal/config"
	"peer-review-workflow/internal/dispatch"
	"peer-review-workflow/internal/domain"
	"peer-review-workflow/internal/handler"
	"peer-review-workflow/internal/infrastructure/database"
	"peer-review-workflow/internal/logger"
	"peer-review-workflow/internal/metrics"
	"peer-review-workflow/internal/middleware"
	"peer-review-workflow/internal/repository"
	"peer-review-workflow/internal/service"
	"peer-review-workflow/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Configure(cfg.LogLevel)

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
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	reviewRepo := repository.NewPostgresReviewRepository(pool)
	notificationRepo := repository.NewPostgresNotificationRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize outbound collaborators
	mailer := dispatch.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	doiRegistrar := dispatch.NewCrossrefRegistrar(cfg.CrossrefDepositURL, cfg.CrossrefUsername, cfg.CrossrefPassword)
	orcidClient := dispatch.NewHTTPOrcidClient(cfg.OrcidAPIURL)

	// Initialize services
	articleService := service.NewArticleService(articleRepo, v)
	reviewService := service.NewReviewService(
		articleRepo,
		reviewRepo,
		userRepo,
		notificationRepo,
		mailer,
		cfg.ReviewDueInDays,
	)
	decisionService := service.NewDecisionService(
		articleRepo,
		userRepo,
		notificationRepo,
		mailer,
		doiRegistrar,
		orcidClient,
		cfg.DecisionRequireUnderReview,
	)
	notificationService := service.NewNotificationService(notificationRepo)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, reviewService, decisionService, v)
	reviewHandler := handler.NewReviewHandler(reviewService, v)
	notificationHandler := handler.NewNotificationHandler(notificationService)
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
	v1.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		// Article routes
		articles := v1.Group("/articles")
		{
			articles.POST("", articleHandler.Submit)
			articles.GET("/:id", articleHandler.Get)
			articles.GET("/:id/reviews", articleHandler.Progress)

			editorial := articles.Group("")
			editorial.Use(middleware.RequireRoles(
				domain.RoleEditor, domain.RoleSuperAdmin, domain.RoleMotherAdmin))
			{
				editorial.POST("/:id/reviewers", articleHandler.AssignReviewers)
				editorial.POST("/:id/reviewers/auto", articleHandler.AutoAssignReviewers)
				editorial.POST("/:id/decision", articleHandler.Decide)
			}
		}

		// Reviewer routes
		reviews := v1.Group("/reviews")
		reviews.Use(middleware.RequireRoles(domain.RoleReviewer))
		{
			reviews.GET("", reviewHandler.ListAssignments)
			reviews.GET("/:id", reviewHandler.Get)
			reviews.PATCH("/:id/start", reviewHandler.Start)
			reviews.POST("/:id", reviewHandler.SubmitDecision)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.POST("/read", notificationHandler.MarkRead)
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
