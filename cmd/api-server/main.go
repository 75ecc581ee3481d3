package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"ebooklib/database"
	"ebooklib/internal/config"
	"ebooklib/internal/http-api/cache"
	"ebooklib/internal/http-api/handler"
	"ebooklib/internal/http-api/middleware"
	"ebooklib/internal/http-api/repository"
	"ebooklib/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not set up database: %v", err)
	}

	redisClient, err := cache.NewClient(cfg)
	if err != nil {
		log.Fatalf("could not parse redis config: %v", err)
	}
	statsCache := cache.NewStatsCache(redisClient, time.Duration(cfg.CacheTTL)*time.Second)
	if redisClient != nil {
		logger.Info("admin stats caching enabled", "ttl_seconds", cfg.CacheTTL)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	pairRepo := repository.NewNamePairRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	librarySvc := service.NewLibraryService(userRepo, sessionRepo)
	namesSvc := service.NewNamesService(userRepo, pairRepo)
	sessionSvc := service.NewSessionService(sessionRepo)
	statsSvc := service.NewStatsService(userRepo, sessionRepo, pairRepo, statsRepo, statsCache)
	maintenanceSvc := service.NewMaintenanceService(cfg, logger)

	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "E-Book Library API is running!")
	})
	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})
	if cfg.FrontendPath != "" {
		r.Static("/frontend", cfg.FrontendPath)
	}

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	handler.NewLibraryHandler(librarySvc).RegisterRoutes(api)
	handler.NewNamesHandler(namesSvc).RegisterRoutes(api)
	handler.NewSessionHandler(sessionSvc).RegisterRoutes(api)
	handler.NewStatsHandler(statsSvc).RegisterRoutes(api)
	handler.NewMaintenanceHandler(maintenanceSvc).RegisterRoutes(api)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
