// Package model provides domain models and DTOs for team module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Role is the membership role state. A member row moves between
// leader, member and vacant; the team service is the only writer.
type Role string

const (
	// RoleLeader marks the single active leader of a team.
	RoleLeader Role = "leader"
	// RoleMember marks an ordinary active member.
	RoleMember Role = "member"
	// RoleVacant marks a vacated slot kept for reuse.
	RoleVacant Role = "vacant"
)

// StatusOpen is the default team status.
const StatusOpen = "open"

// Team represents a team entity in the system.
// Matches the teams table schema. Members are loaded separately by the
// repository; Version backs optimistic concurrency on member mutations.
type Team struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	HackathonID string    `gorm:"column:hackathon_id;type:varchar(36);not null;index:idx_teams_hackathon" json:"hackathon_id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	MaxMembers  int       `gorm:"column:max_members;not null" json:"max_members"`
	Status      string    `gorm:"column:status;type:varchar(32);not null;default:open" json:"status"`
	Version     int64     `gorm:"column:version;not null;default:1" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"-"`

	Members []Member `gorm:"-" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// ActiveMembers returns member rows that are not vacated, in slot order.
func (t *Team) ActiveMembers() []Member {
	active := make([]Member, 0, len(t.Members))
	for _, m := range t.Members {
		if !m.IsDeleted {
			active = append(active, m)
		}
	}
	return active
}

// ActiveCount returns the number of non-vacated members.
func (t *Team) ActiveCount() int {
	return len(t.ActiveMembers())
}

// VacancyCount returns the number of free seats.
func (t *Team) VacancyCount() int {
	n := t.MaxMembers - t.ActiveCount()
	if n < 0 {
		return 0
	}
	return n
}

// MemberFor returns the member row for a user, vacated or not.
func (t *Team) MemberFor(userID string) *Member {
	for i := range t.Members {
		if t.Members[i].UserID == userID {
			return &t.Members[i]
		}
	}
	return nil
}

// IsActiveMember reports whether the user currently occupies a seat.
func (t *Team) IsActiveMember(userID string) bool {
	m := t.MemberFor(userID)
	return m != nil && !m.IsDeleted
}

// ActiveLeader returns the active member holding the leader role, if any.
func (t *Team) ActiveLeader() *Member {
	for i := range t.Members {
		if !t.Members[i].IsDeleted && t.Members[i].Role == RoleLeader {
			return &t.Members[i]
		}
	}
	return nil
}
