// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/hackteams/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Upsert creates or replaces the profile.
	Upsert(ctx context.Context, user *model.User) error

	// GetByID finds user by user_id.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// Delete removes the profile. Deleting a missing profile is a no-op.
	Delete(ctx context.Context, userID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Upsert creates or replaces the profile.
func (r *repository) Upsert(ctx context.Context, user *model.User) error {
	// Save performs INSERT ... ON CONFLICT DO UPDATE for records with a
	// populated primary key.
	err := r.db.WithContext(ctx).Save(user).Error
	if err != nil {
		r.logger.Errorw("Upsert database error", "user_id", user.UserID, "error", err)
		return err
	}
	return nil
}

// GetByID finds user by user_id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", userID, "error", err)
		return nil, err
	}
	return &user, nil
}

// Delete removes the profile.
func (r *repository) Delete(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.User{}).Error
	if err != nil {
		r.logger.Errorw("Delete database error", "user_id", userID, "error", err)
		return err
	}
	return nil
}
