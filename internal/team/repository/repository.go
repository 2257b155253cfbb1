// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	teamModel "github.com/festy23/hackteams/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team together with its member rows.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetWithMembers loads a team and its member rows in slot order.
	GetWithMembers(ctx context.Context, teamID string) (*teamModel.Team, error)

	// ListByHackathon returns all teams of a hackathon with their members.
	ListByHackathon(ctx context.Context, hackathonID string) ([]teamModel.Team, error)

	// ListIDs returns the ids of every team.
	ListIDs(ctx context.Context) ([]string, error)

	// TeamIDsWithUser returns ids of teams holding a member row for the
	// user, vacated rows included.
	TeamIDsWithUser(ctx context.Context, userID string) ([]string, error)

	// HasActiveMemberInHackathon reports whether the user holds an active
	// seat in any team of the hackathon, optionally excluding one team.
	HasActiveMemberInHackathon(ctx context.Context, hackathonID, userID, excludeTeamID string) (bool, error)

	// SaveMembers persists the member list with an optimistic version
	// check on the team row. Returns ErrVersionConflict when a concurrent
	// writer got there first.
	SaveMembers(ctx context.Context, team *teamModel.Team) error

	// Delete removes the team and all of its member rows, guarded by the
	// same version check as SaveMembers. Returns ErrVersionConflict when
	// a concurrent writer bumped the version after the caller's read;
	// a team that is already gone is a no-op.
	Delete(ctx context.Context, teamID string, version int64) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new team together with its member rows.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		for i := range team.Members {
			if err := tx.Create(&team.Members[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetWithMembers loads a team and its member rows in slot order.
func (r *repository) GetWithMembers(ctx context.Context, teamID string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("slot ASC").
		Find(&team.Members).Error
	if err != nil {
		return nil, err
	}

	return &team, nil
}

// ListByHackathon returns all teams of a hackathon with their members.
func (r *repository) ListByHackathon(ctx context.Context, hackathonID string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return []teamModel.Team{}, nil
	}

	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}

	var members []teamModel.Member
	err = r.db.WithContext(ctx).
		Where("team_id IN ?", ids).
		Order("team_id ASC, slot ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	byTeam := make(map[string][]teamModel.Member, len(teams))
	for _, m := range members {
		byTeam[m.TeamID] = append(byTeam[m.TeamID], m)
	}
	for i := range teams {
		teams[i].Members = byTeam[teams[i].ID]
	}

	return teams, nil
}

// ListIDs returns the ids of every team.
func (r *repository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// TeamIDsWithUser returns ids of teams holding a member row for the user.
func (r *repository) TeamIDsWithUser(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&teamModel.Member{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("team_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// HasActiveMemberInHackathon reports whether the user holds an active seat
// in any team of the hackathon. The check runs outside the team write, so
// it is best effort only; see the service for the consistency contract.
func (r *repository) HasActiveMemberInHackathon(ctx context.Context, hackathonID, userID, excludeTeamID string) (bool, error) {
	query := r.db.WithContext(ctx).
		Table("team_members").
		Joins("JOIN teams ON teams.id = team_members.team_id").
		Where("teams.hackathon_id = ?", hackathonID).
		Where("team_members.user_id = ?", userID).
		Where("team_members.is_deleted = ?", false)

	if excludeTeamID != "" {
		query = query.Where("team_members.team_id <> ?", excludeTeamID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveMembers persists the member list guarded by the team row version.
func (r *repository) SaveMembers(ctx context.Context, team *teamModel.Team) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&teamModel.Team{}).
			Where("id = ? AND version = ?", team.ID, team.Version).
			Updates(map[string]interface{}{
				"version":    team.Version + 1,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Distinguish a deleted team from a stale read.
			var count int64
			if err := tx.Model(&teamModel.Team{}).Where("id = ?", team.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return teamModel.ErrTeamNotFound
			}
			return teamModel.ErrVersionConflict
		}

		for i := range team.Members {
			member := &team.Members[i]
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "team_id"}, {Name: "slot"}},
				UpdateAll: true,
			}).Create(member).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	team.Version++
	return nil
}

// Delete removes the team and all of its member rows, guarded by the
// team row version. A delete decided on a stale read must lose to the
// concurrent mutation that bumped the version.
func (r *repository) Delete(ctx context.Context, teamID string, version int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND version = ?", teamID, version).Delete(&teamModel.Team{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Distinguish an already-deleted team from a stale read.
			var count int64
			if err := tx.Model(&teamModel.Team{}).Where("id = ?", teamID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return nil
			}
			return teamModel.ErrVersionConflict
		}
		return tx.Where("team_id = ?", teamID).Delete(&teamModel.Member{}).Error
	})
}
