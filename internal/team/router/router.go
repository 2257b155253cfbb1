// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/hackteams/internal/config"
	"github.com/festy23/hackteams/internal/middleware"
	"github.com/festy23/hackteams/internal/team/handler"
	"github.com/festy23/hackteams/internal/team/repository"
	"github.com/festy23/hackteams/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, authCfg config.AuthConfig) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	auth := middleware.AuthRequired(authCfg)

	r.GET("/teams/:id", h.Get)
	r.GET("/hackathons/:id/teams", h.ListByHackathon)
	r.POST("/teams", auth, h.Create)
	r.POST("/teams/:id/join", auth, h.Join)
	r.POST("/teams/:id/leave", auth, h.Leave)
	r.DELETE("/teams/:id", auth, h.Delete)
}
