package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jaredsteven/portfolio-backend/internal/config"
	"github.com/jaredsteven/portfolio-backend/internal/domain"
	"github.com/jaredsteven/portfolio-backend/internal/handler"
	"github.com/jaredsteven/portfolio-backend/internal/middleware"
	"github.com/jaredsteven/portfolio-backend/internal/repository"
	"github.com/jaredsteven/portfolio-backend/internal/routes"
	"github.com/jaredsteven/portfolio-backend/internal/service"
	pkgcache "github.com/jaredsteven/portfolio-backend/pkg/cache"
	"github.com/jaredsteven/portfolio-backend/pkg/jwt"
	pkglogger "github.com/jaredsteven/portfolio-backend/pkg/logger"
	pkgredis "github.com/jaredsteven/portfolio-backend/pkg/redis"

	"github.com/redis/go-redis/v9"
)

const sessionLifetime = 24 * time.Hour

func main() {
	cfg := config.Load()

	pkglogger.InitStructured(cfg.Env)
	pkglogger.GetLogger().Info().
		Str("env", cfg.Env).
		Strs("env_files", cfg.DotEnvFiles).
		Msg("starting")

	// Postgres is the system of record; there is no degraded mode without it
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.GetLogger().Info().Msg("connected to Postgres")

	if err := db.AutoMigrate(&domain.Post{}, &domain.Project{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional; without it the cache service degrades to pass-through
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
		)
		if err != nil {
			pkglogger.GetLogger().Warn().Err(err).Msg("Redis unavailable, continuing without cache")
			redisClient = nil
		} else {
			pkglogger.GetLogger().Info().Msg("connected to Redis")
		}
	}
	cacheService := pkgcache.NewService(redisClient)

	jwtManager := jwt.NewManager(cfg.JWTSecret, sessionLifetime)

	// Repositories and services
	postRepo := repository.NewPostRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	authService := service.NewAuthService(cfg, jwtManager)
	postService := service.NewPostService(postRepo, cacheService)
	projectService := service.NewProjectService(projectRepo, cacheService)
	sitemapService := service.NewSitemapService(postRepo, cfg.SiteURL)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	postHandler := handler.NewPostHandler(postService)
	projectHandler := handler.NewProjectHandler(projectService)
	publicHandler := handler.NewPublicHandler(postService, sitemapService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS: the frontend sends the session cookie cross-origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORSAllowOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "portfolio-backend",
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(router, authHandler, postHandler, projectHandler, publicHandler, authService)

	go healthTicker(db, redisClient)

	addr := ":" + cfg.Port
	pkglogger.GetLogger().Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDB opens the Postgres connection. TranslateError turns driver
// unique-violation errors into gorm.ErrDuplicatedKey, which the post
// repository maps to the slug conflict.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
}

// healthTicker periodically checks the backing stores and logs failures.
// It never takes the service down; a flapping dependency shows up in the
// logs rather than as a crash loop.
func healthTicker(db *gorm.DB, redisClient *redis.Client) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if sqlDB, err := db.DB(); err != nil {
			pkglogger.GetLogger().Error().Err(err).Msg("health: database handle unavailable")
		} else if err := sqlDB.PingContext(ctx); err != nil {
			pkglogger.GetLogger().Error().Err(err).Msg("health: database ping failed")
		}

		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				pkglogger.GetLogger().Warn().Err(err).Msg("health: redis ping failed")
			}
		}

		cancel()
	}
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
