// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/festy23/hackteams/internal/cleanup"
	"github.com/festy23/hackteams/internal/config"
	"github.com/festy23/hackteams/internal/database/database"
	"github.com/festy23/hackteams/internal/database/migrate"
	hackathonRouter "github.com/festy23/hackteams/internal/hackathon/router"
	"github.com/festy23/hackteams/internal/health"
	joinrequestRouter "github.com/festy23/hackteams/internal/joinrequest/router"
	"github.com/festy23/hackteams/internal/middleware"
	"github.com/festy23/hackteams/internal/scheduler"
	teamRepository "github.com/festy23/hackteams/internal/team/repository"
	teamRouter "github.com/festy23/hackteams/internal/team/router"
	teamService "github.com/festy23/hackteams/internal/team/service"
	userRepository "github.com/festy23/hackteams/internal/user/repository"
	userRouter "github.com/festy23/hackteams/internal/user/router"
	"github.com/festy23/hackteams/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close(db)

	if config.GetEnvBool("RUN_MIGRATIONS", true) {
		if err := migrate.Migrate(db); err != nil {
			appLogger.Fatalw("failed to apply migrations", "error", err)
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(appLogger))
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.CORS())

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	teamRouter.RegisterRoutes(r, db, appLogger, cfg.Auth)
	joinrequestRouter.RegisterRoutes(r, db, appLogger, cfg.Auth)
	userRouter.RegisterRoutes(r, db, appLogger, cfg.Auth)
	hackathonRouter.RegisterRoutes(r, db, appLogger, cfg.Auth)

	teamRepo := teamRepository.New(db)
	mutate := teamService.New(teamRepo, appLogger)
	userRepo := userRepository.New(db, appLogger)
	cleanupSvc := cleanup.New(teamRepo, mutate, userRepo, appLogger)

	// Manual sweep trigger, guarded by the same identity middleware.
	internalGroup := r.Group("/internal")
	internalGroup.Use(middleware.AuthRequired(cfg.Auth))
	internalGroup.POST("/sweep", func(c *gin.Context) {
		stats, err := cleanupSvc.RunSweep(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "internal server error",
			}})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	sweepScheduler := scheduler.New(cleanupSvc, cfg.Sweep, appLogger)
	if err := sweepScheduler.Start(); err != nil {
		appLogger.Fatalw("failed to start sweep scheduler", "error", err)
	}
	defer sweepScheduler.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("server shutdown failed", "error", err)
	}
}
