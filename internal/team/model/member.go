package model

import (
	"time"

	"gorm.io/gorm"
)

// Member represents one seat of a team, keyed by (team_id, slot).
// Matches the team_members table schema. A vacated seat keeps its row
// (is_deleted=true, role=vacant) so capacity accounting and history
// survive; a later joiner reuses the slot or the same user reactivates it.
type Member struct {
	TeamID         string     `gorm:"primaryKey;column:team_id;type:varchar(36)" json:"-"`
	Slot           int        `gorm:"primaryKey;column:slot" json:"slot"`
	UserID         string     `gorm:"column:user_id;type:varchar(255);not null;index:idx_team_members_user" json:"user_id"`
	OriginalUserID string     `gorm:"column:original_user_id;type:varchar(255)" json:"original_user_id,omitempty"`
	Role           Role       `gorm:"column:role;type:varchar(16);not null" json:"role"`
	IsDeleted      bool       `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	Rejoined       bool       `gorm:"column:rejoined;not null;default:false" json:"rejoined,omitempty"`
	JoinedAt       time.Time  `gorm:"column:joined_at;not null" json:"joined_at"`
	DeletedAt      *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	PromotedAt     *time.Time `gorm:"column:promoted_at" json:"promoted_at,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"-"`
	UpdatedAt      time.Time  `gorm:"column:updated_at" json:"-"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "team_members"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (m *Member) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}
