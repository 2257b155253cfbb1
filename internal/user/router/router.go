// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/hackteams/internal/cleanup"
	"github.com/festy23/hackteams/internal/config"
	"github.com/festy23/hackteams/internal/middleware"
	teamRepository "github.com/festy23/hackteams/internal/team/repository"
	teamService "github.com/festy23/hackteams/internal/team/service"
	"github.com/festy23/hackteams/internal/user/handler"
	"github.com/festy23/hackteams/internal/user/repository"
	"github.com/festy23/hackteams/internal/user/service"
)

// RegisterRoutes registers user module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, authCfg config.AuthConfig) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)

	teamRepo := teamRepository.New(db)
	mutate := teamService.New(teamRepo, logger)
	cln := cleanup.New(teamRepo, mutate, repo, logger)

	h := handler.New(svc, cln, logger)

	r.GET("/users/:id", h.Get)

	auth := r.Group("/")
	auth.Use(middleware.AuthRequired(authCfg))
	auth.POST("/users", h.Upsert)
	auth.DELETE("/users/me", h.DeleteMe)
}
