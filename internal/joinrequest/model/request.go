// Package model provides domain models and DTOs for joinrequest module.
package model

import "time"

// Status is the lifecycle state of a join request. Terminal states are
// never reopened.
type Status string

const (
	// StatusPending marks a request awaiting a leader's decision.
	StatusPending Status = "pending"
	// StatusAccepted marks a request whose join was applied.
	StatusAccepted Status = "accepted"
	// StatusRejected marks a declined request.
	StatusRejected Status = "rejected"
)

// JoinRequest represents a pending application to join a team.
// Matches the join_requests table schema. A request references a
// (team, user) pair; it does not itself grant membership.
type JoinRequest struct {
	ID          string     `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	TeamID      string     `gorm:"column:team_id;type:varchar(36);not null;index:idx_join_requests_team" json:"team_id"`
	UserID      string     `gorm:"column:user_id;type:varchar(255);not null;index:idx_join_requests_user" json:"user_id"`
	Status      Status     `gorm:"column:status;type:varchar(16);not null;default:pending" json:"status"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	RespondedAt *time.Time `gorm:"column:responded_at" json:"responded_at,omitempty"`
}

// TableName specifies the table name for GORM.
func (JoinRequest) TableName() string {
	return "join_requests"
}
