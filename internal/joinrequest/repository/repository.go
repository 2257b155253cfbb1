// Package repository provides data access layer for joinrequest module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/hackteams/internal/joinrequest/model"
)

// Repository defines the interface for join request data access operations.
type Repository interface {
	// Create inserts a new pending request.
	Create(ctx context.Context, request *model.JoinRequest) error

	// GetByID finds a request by id.
	GetByID(ctx context.Context, requestID string) (*model.JoinRequest, error)

	// HasPending reports whether a pending request exists for (team, user).
	HasPending(ctx context.Context, teamID, userID string) (bool, error)

	// ListPendingByTeam returns a team's pending requests, oldest first.
	ListPendingByTeam(ctx context.Context, teamID string) ([]model.JoinRequest, error)

	// MarkResponded moves a pending request to a terminal status. Returns
	// ErrRequestNotPending when the request was already resolved.
	MarkResponded(ctx context.Context, requestID string, status model.Status) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new join request repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new pending request.
func (r *repository) Create(ctx context.Context, request *model.JoinRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID finds a request by id.
func (r *repository) GetByID(ctx context.Context, requestID string) (*model.JoinRequest, error) {
	var request model.JoinRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", requestID).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRequestNotFound
		}
		r.logger.Errorw("GetByID database error", "request_id", requestID, "error", err)
		return nil, err
	}
	return &request, nil
}

// HasPending reports whether a pending request exists for (team, user).
func (r *repository) HasPending(ctx context.Context, teamID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.JoinRequest{}).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, model.StatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPendingByTeam returns a team's pending requests, oldest first.
func (r *repository) ListPendingByTeam(ctx context.Context, teamID string) ([]model.JoinRequest, error) {
	var requests []model.JoinRequest
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, model.StatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	if requests == nil {
		return []model.JoinRequest{}, nil
	}
	return requests, nil
}

// MarkResponded moves a pending request to a terminal status. The status
// guard in the WHERE clause keeps terminal states immutable even under
// concurrent responses.
func (r *repository) MarkResponded(ctx context.Context, requestID string, status model.Status) error {
	result := r.db.WithContext(ctx).
		Model(&model.JoinRequest{}).
		Where("id = ? AND status = ?", requestID, model.StatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.JoinRequest{}).Where("id = ?", requestID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return model.ErrRequestNotFound
		}
		return model.ErrRequestNotPending
	}
	return nil
}
