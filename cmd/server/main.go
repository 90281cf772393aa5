package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raindropoju/scripture-memory/internal/auth"
	"github.com/raindropoju/scripture-memory/internal/common/database"
	commonHandlers "github.com/raindropoju/scripture-memory/internal/common/handlers"
	"github.com/raindropoju/scripture-memory/internal/common/health"
	"github.com/raindropoju/scripture-memory/internal/common/middleware"
	gameHandlers "github.com/raindropoju/scripture-memory/internal/game/handlers"
	"github.com/raindropoju/scripture-memory/internal/game/session"
	"github.com/raindropoju/scripture-memory/internal/game/storage"
	"github.com/raindropoju/scripture-memory/pkg/config"
	"github.com/raindropoju/scripture-memory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Remote store: PostgreSQL in production, SQLite in development.
	remoteDB, err := database.Open(cfg.Remote.Type, cfg.Remote.DSN)
	if err != nil {
		log.Fatalf("Failed to open remote store: %v", err)
	}
	defer database.Close(remoteDB)

	// Local cache: always embedded SQLite, usable with no network at all.
	cacheDB, err := database.Open("sqlite", cfg.Cache.Path)
	if err != nil {
		log.Fatalf("Failed to open local cache: %v", err)
	}
	defer database.Close(cacheDB)

	local := storage.NewLocalCache(cacheDB, logger.L())
	remote := storage.NewRemoteStore(remoteDB)
	authService := auth.NewService(remoteDB, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	if err := local.Migrate(); err != nil {
		log.Fatalf("Failed to migrate local cache: %v", err)
	}
	if err := remote.Migrate(); err != nil {
		log.Fatalf("Failed to migrate remote store: %v", err)
	}
	if err := authService.Migrate(); err != nil {
		log.Fatalf("Failed to migrate auth tables: %v", err)
	}

	manager := session.NewManager(local, remote, logger.L())
	defer manager.Close()

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	healthChecker := health.NewChecker(cacheDB, remoteDB, "1.0.0")
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)

	authHandler := auth.NewHandler(authService)
	gameHandler := gameHandlers.NewGameHandler(manager)
	contentHandler := gameHandlers.NewContentHandler()
	leaderboardHandler := gameHandlers.NewLeaderboardHandler(local, remote)

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", middleware.AuthRequired(cfg.Auth.JWTSecret), authHandler.Me)
		}

		contentGroup := v1.Group("/content")
		{
			contentGroup.GET("/decks", contentHandler.ListDecks)
			contentGroup.GET("/decks/:id", contentHandler.GetDeck)
			contentGroup.GET("/badges", contentHandler.ListBadges)
		}

		gameGroup := v1.Group("/game", middleware.OptionalAuth(cfg.Auth.JWTSecret))
		{
			gameGroup.GET("/state", gameHandler.State)
			gameGroup.POST("/rounds/setup", contentHandler.SetupRound)
			gameGroup.POST("/rounds/complete", gameHandler.CompleteRound)
			gameGroup.POST("/cards/progress", gameHandler.UpdateCardProgress)
			gameGroup.POST("/cards/master", gameHandler.MasterCard)
			gameGroup.POST("/decks/:id/reset-mastered", gameHandler.ResetDeckMastered)
			gameGroup.POST("/reset", gameHandler.ResetProgress)
			gameGroup.POST("/badges/clear", gameHandler.ClearNewBadges)
			gameGroup.PUT("/settings", gameHandler.UpdateSettings)
		}

		leaderboardGroup := v1.Group("/leaderboard", middleware.OptionalAuth(cfg.Auth.JWTSecret))
		{
			leaderboardGroup.GET("", leaderboardHandler.Global)
			leaderboardGroup.GET("/local", leaderboardHandler.Local)
			leaderboardGroup.POST("", leaderboardHandler.Submit)
		}
	}

	srv := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.L().Infow("server starting", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Infow("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Errorw("forced shutdown", "error", err)
	}
}
