// Package service provides business logic layer for hackathon module.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/hackteams/internal/hackathon/model"
	"github.com/festy23/hackteams/internal/hackathon/repository"
)

// Service defines the interface for hackathon business logic operations.
type Service interface {
	// Create registers a new hackathon.
	Create(ctx context.Context, req *model.CreateHackathonRequest) (*model.HackathonResponse, error)

	// Get returns a hackathon by id.
	Get(ctx context.Context, id string) (*model.HackathonResponse, error)

	// List returns hackathons matching the time filter.
	List(ctx context.Context, filter model.Filter) (*model.ListResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new hackathon service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Create registers a new hackathon.
func (s *service) Create(ctx context.Context, req *model.CreateHackathonRequest) (*model.HackathonResponse, error) {
	if req.Name == "" {
		return nil, model.ErrInvalidName
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, model.ErrInvalidDates
	}

	h := &model.Hackathon{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		IsVirtual:   req.IsVirtual,
		Prize:       req.Prize,
		Tags:        req.Tags,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		s.logger.Errorw("Create failed", "name", req.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("hackathon created", "hackathon_id", h.ID, "name", h.Name)
	return &model.HackathonResponse{Hackathon: *h}, nil
}

// Get returns a hackathon by id.
func (s *service) Get(ctx context.Context, id string) (*model.HackathonResponse, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.HackathonResponse{Hackathon: *h}, nil
}

// List returns hackathons matching the time filter. An empty filter
// defaults to all.
func (s *service) List(ctx context.Context, filter model.Filter) (*model.ListResponse, error) {
	if filter == "" {
		filter = model.FilterAll
	}
	if !filter.Valid() {
		return nil, model.ErrInvalidFilter
	}

	hackathons, err := s.repo.List(ctx, filter, time.Now())
	if err != nil {
		return nil, err
	}
	return &model.ListResponse{Hackathons: hackathons}, nil
}
