// Package service provides business logic layer for user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/hackteams/internal/user/model"
	"github.com/festy23/hackteams/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// UpsertProfile creates or updates the caller's profile.
	UpsertProfile(ctx context.Context, userID string, req *model.UpsertProfileRequest) (*model.ProfileResponse, error)

	// GetProfile returns a profile by user id.
	GetProfile(ctx context.Context, userID string) (*model.ProfileResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// UpsertProfile creates or updates the caller's profile.
func (s *service) UpsertProfile(ctx context.Context, userID string, req *model.UpsertProfileRequest) (*model.ProfileResponse, error) {
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}
	if req.DisplayName == "" {
		return nil, model.ErrInvalidDisplayName
	}

	user := &model.User{
		UserID:         userID,
		DisplayName:    req.DisplayName,
		Bio:            req.Bio,
		Skills:         req.Skills,
		GitHubUsername: req.GitHubUsername,
		LookingForTeam: req.LookingForTeam,
	}
	if err := s.repo.Upsert(ctx, user); err != nil {
		s.logger.Errorw("UpsertProfile failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Infow("profile upserted", "user_id", userID)
	return &model.ProfileResponse{User: *user}, nil
}

// GetProfile returns a profile by user id.
func (s *service) GetProfile(ctx context.Context, userID string) (*model.ProfileResponse, error) {
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.ProfileResponse{User: *user}, nil
}
