package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/shortlyhq/shortly-backend/internal/auth"
	"github.com/shortlyhq/shortly-backend/internal/cache"
	"github.com/shortlyhq/shortly-backend/internal/config"
	"github.com/shortlyhq/shortly-backend/internal/database"
	"github.com/shortlyhq/shortly-backend/internal/handlers"
	"github.com/shortlyhq/shortly-backend/internal/middleware"
	"github.com/shortlyhq/shortly-backend/internal/models"
	"github.com/shortlyhq/shortly-backend/internal/repository"
	"github.com/shortlyhq/shortly-backend/internal/routes"
	"github.com/shortlyhq/shortly-backend/internal/services"
	"github.com/shortlyhq/shortly-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Env)
	log.Info().Str("environment", cfg.Env).Msg("Starting Shortly backend")

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.AutoMigrate(&models.User{}, &models.ShortLink{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	log.Info().Msg("Database migrations complete")

	rdb, err := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unreachable at startup; redirect caching degraded until it recovers")
	}

	// Collaborators are constructed once here and passed down; no package
	// globals.
	linkCache := cache.New(rdb, log)
	urlRepo := repository.NewURLRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	authSvc := services.NewAuthService(userRepo, tokens, log)
	shortenSvc := services.NewShortenService(urlRepo, log)
	redirectSvc := services.NewRedirectService(urlRepo, linkCache, log)
	myURLsSvc := services.NewMyURLsService(urlRepo, linkCache, log)

	r := gin.New()
	r.Use(middleware.ErrorHandler(log))
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.ResolveIdentity(tokens, authSvc))
	r.Use(middleware.RequestLogger(log))

	shortenLimiter := middleware.NewIPRateLimiter(rate.Limit(3), 3)

	routes.Register(r, routes.Handlers{
		Auth:           handlers.NewAuthHandler(authSvc),
		Shorten:        handlers.NewShortenHandler(shortenSvc, cfg.BaseURL),
		MyURLs:         handlers.NewMyURLsHandler(myURLsSvc, cfg.BaseURL),
		Redirect:       handlers.NewRedirectHandler(redirectSvc),
		Health:         handlers.NewHealthHandler(db, rdb),
		ShortenLimiter: middleware.RateLimit(shortenLimiter, log),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	if rdb != nil {
		_ = rdb.Close()
	}

	log.Info().Msg("Server exited")
}
