// Package router provides joinrequest module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/hackteams/internal/config"
	"github.com/festy23/hackteams/internal/joinrequest/handler"
	"github.com/festy23/hackteams/internal/joinrequest/repository"
	"github.com/festy23/hackteams/internal/joinrequest/service"
	"github.com/festy23/hackteams/internal/middleware"
	teamRepository "github.com/festy23/hackteams/internal/team/repository"
	teamService "github.com/festy23/hackteams/internal/team/service"
)

// RegisterRoutes registers joinrequest module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, authCfg config.AuthConfig) {
	teams := teamRepository.New(db)
	mutate := teamService.New(teams, logger)

	repo := repository.New(db, logger)
	svc := service.New(repo, teams, mutate, logger)
	h := handler.New(svc, logger)

	auth := middleware.AuthRequired(authCfg)

	r.POST("/teams/:id/requests", auth, h.Submit)
	r.GET("/teams/:id/requests", auth, h.ListPending)
	r.POST("/requests/:id/accept", auth, h.Accept)
	r.POST("/requests/:id/reject", auth, h.Reject)
}
