// Package router provides hackathon module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/hackteams/internal/config"
	"github.com/festy23/hackteams/internal/hackathon/handler"
	"github.com/festy23/hackteams/internal/hackathon/repository"
	"github.com/festy23/hackteams/internal/hackathon/service"
	"github.com/festy23/hackteams/internal/middleware"
)

// RegisterRoutes registers hackathon module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, authCfg config.AuthConfig) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc)

	r.GET("/hackathons", h.List)
	r.GET("/hackathons/:id", h.Get)

	auth := r.Group("/")
	auth.Use(middleware.AuthRequired(authCfg))
	auth.POST("/hackathons", h.Create)
}
