// Package model provides domain models and DTOs for user module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a participant profile.
// Matches the users table schema. The user id comes from the external
// identity provider and is never generated here.
type User struct {
	UserID         string    `gorm:"primaryKey;column:user_id;type:varchar(255)" json:"user_id"`
	DisplayName    string    `gorm:"column:display_name;type:varchar(255);not null" json:"display_name"`
	Bio            string    `gorm:"column:bio;type:text" json:"bio,omitempty"`
	Skills         []string  `gorm:"column:skills;serializer:json" json:"skills,omitempty"`
	GitHubUsername string    `gorm:"column:github_username;type:varchar(255)" json:"github_username,omitempty"`
	LookingForTeam bool      `gorm:"column:looking_for_team;not null;default:false" json:"looking_for_team"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
