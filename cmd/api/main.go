package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexthire/job-board/internal/config"
	"github.com/nexthire/job-board/internal/database"
	"github.com/nexthire/job-board/internal/handlers"
	"github.com/nexthire/job-board/internal/middleware"
	"github.com/nexthire/job-board/internal/services"
)

const version = "0.1.0"

func main() {
	// 1. Configuration (.env honored)
	cfg := config.MustLoad()

	// 2. Logger
	log := setupLogger(cfg.DebugMode)
	defer log.Sync()

	log.Info("starting api",
		zap.String("project", cfg.ProjectName),
		zap.Bool("debug", cfg.DebugMode),
		zap.Strings("cors_origins", cfg.CORSOrigins()))

	// 3. Database
	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// 4. Services & Handlers
	jobService := services.NewJobService(db, log, cfg.MaxJobPostings)
	jobHandler := handlers.NewJobHandler(jobService, log)
	tagHandler := handlers.NewTagHandler(jobService, log)

	// 5. Router, CORS, request logging
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins()
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Modification-Code"}
	r.Use(cors.New(corsCfg))

	// 6. Rate limiting (redis-backed when configured)
	store := middleware.NewRateLimitStore(cfg.RedisURL, log)
	writeLimit := middleware.RateLimit(store, middleware.WriteRate, log)
	verifyLimit := middleware.RateLimit(store, middleware.VerifyRate, log)

	// 7. Routes
	r.GET("/", handlers.Root(db, cfg.ProjectName, version))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/tags", tagHandler.List)

		jobs := api.Group("/jobs")
		{
			jobs.POST("", writeLimit, jobHandler.Create)
			jobs.GET("", jobHandler.List)
			jobs.POST("/saved", jobHandler.Saved)
			jobs.GET("/:id", jobHandler.Get)
			jobs.PATCH("/:id", writeLimit, jobHandler.Update)
			jobs.DELETE("/:id", writeLimit, jobHandler.Delete)
			jobs.GET("/:id/related", jobHandler.Related)
			jobs.POST("/:id/verify", verifyLimit, jobHandler.Verify)
		}
	}

	log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func setupLogger(debug bool) *zap.Logger {
	if debug {
		log, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return log
	}
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return log
}
