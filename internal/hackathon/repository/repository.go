// Package repository provides data access layer for hackathon module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/hackteams/internal/hackathon/model"
)

// Repository defines the interface for hackathon data access operations.
type Repository interface {
	// Create inserts a new hackathon.
	Create(ctx context.Context, h *model.Hackathon) error

	// GetByID finds a hackathon by id.
	GetByID(ctx context.Context, id string) (*model.Hackathon, error)

	// List returns hackathons matching the time filter, soonest first.
	List(ctx context.Context, filter model.Filter, now time.Time) ([]model.Hackathon, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new hackathon repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new hackathon.
func (r *repository) Create(ctx context.Context, h *model.Hackathon) error {
	err := r.db.WithContext(ctx).Create(h).Error
	if err != nil {
		r.logger.Errorw("Create database error", "hackathon_id", h.ID, "error", err)
		return err
	}
	return nil
}

// GetByID finds a hackathon by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Hackathon, error) {
	var h model.Hackathon
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrHackathonNotFound
		}
		r.logger.Errorw("GetByID database error", "hackathon_id", id, "error", err)
		return nil, err
	}
	return &h, nil
}

// List returns hackathons matching the time filter, soonest first.
func (r *repository) List(ctx context.Context, filter model.Filter, now time.Time) ([]model.Hackathon, error) {
	q := r.db.WithContext(ctx).Model(&model.Hackathon{})

	switch filter {
	case model.FilterUpcoming:
		q = q.Where("start_date > ?", now)
	case model.FilterOngoing:
		q = q.Where("start_date <= ? AND end_date >= ?", now, now)
	case model.FilterPast:
		q = q.Where("end_date < ?", now)
	}

	var hackathons []model.Hackathon
	err := q.Order("start_date ASC").Find(&hackathons).Error
	if err != nil {
		r.logger.Errorw("List database error", "filter", filter, "error", err)
		return nil, err
	}
	return hackathons, nil
}
