package cleanup

import (
	"context"
	"errors"
	"time"

	teamModel "github.com/festy23/hackteams/internal/team/model"
	"github.com/festy23/hackteams/pkg/retry"
)

// SweepStats summarizes one sweep run.
type SweepStats struct {
	Scanned  int `json:"scanned"`
	Promoted int `json:"promoted"`
	Deleted  int `json:"deleted"`
	Failed   int `json:"failed"`
}

// RunSweep scans all teams and repairs any without an active leader:
// empty teams are deleted, leaderless teams get their first active
// member promoted, teams with no active members are deleted. The sweep
// is a no-op on consistent teams, so it is safe to run at any time,
// including alongside live mutations.
func (s *service) RunSweep(ctx context.Context) (SweepStats, error) {
	stats := SweepStats{}

	teamIDs, err := s.teams.ListIDs(ctx)
	if err != nil {
		s.logger.Errorw("sweep failed to list teams", "error", err)
		return stats, err
	}

	for _, teamID := range teamIDs {
		stats.Scanned++
		if err := s.sweepTeam(ctx, teamID, &stats); err != nil {
			s.logger.Errorw("sweep failed for team", "team_id", teamID, "error", err)
			stats.Failed++
		}
	}

	s.logger.Infow("sweep completed",
		"scanned", stats.Scanned,
		"promoted", stats.Promoted,
		"deleted", stats.Deleted,
		"failed", stats.Failed,
	)
	return stats, nil
}

// sweepTeam repairs one team under the usual read-modify-write guard.
// A team deleted between listing and reading is treated as done.
func (s *service) sweepTeam(ctx context.Context, teamID string, stats *SweepStats) error {
	return retry.Do(ctx, retry.ConflictConfig(), func() error {
		team, err := s.teams.GetWithMembers(ctx, teamID)
		if err != nil {
			if errors.Is(err, teamModel.ErrTeamNotFound) {
				return nil
			}
			return err
		}

		switch action := team.Repair(time.Now()); action {
		case teamModel.RepairNone:
			return nil
		case teamModel.RepairDelete:
			if err := s.teams.Delete(ctx, teamID, team.Version); err != nil {
				return err
			}
			stats.Deleted++
			s.logger.Infow("sweep deleted team without active members", "team_id", teamID)
			return nil
		case teamModel.RepairPromote:
			if err := s.teams.SaveMembers(ctx, team); err != nil {
				return err
			}
			stats.Promoted++
			s.logger.Infow("sweep promoted new leader", "team_id", teamID, "new_leader_id", team.ActiveLeader().UserID)
			return nil
		default:
			return nil
		}
	})
}
