// Package cleanup keeps team membership consistent when user accounts
// disappear, and backstops it with a periodic full-corpus sweep.
package cleanup

import (
	"context"
	"errors"

	"go.uber.org/zap"

	teamModel "github.com/festy23/hackteams/internal/team/model"
	teamRepository "github.com/festy23/hackteams/internal/team/repository"
	teamService "github.com/festy23/hackteams/internal/team/service"
	userRepository "github.com/festy23/hackteams/internal/user/repository"
)

// Service defines the interface for account cleanup operations.
type Service interface {
	// ReconcileUserDeletion removes the user's profile and vacates the
	// user's seat in every team holding a member row for them. Per-team
	// failures are logged and do not abort the batch.
	ReconcileUserDeletion(ctx context.Context, userID string) error

	// RunSweep scans all teams and repairs leaderless or empty ones.
	RunSweep(ctx context.Context) (SweepStats, error)
}

type service struct {
	teams  teamRepository.Repository
	mutate teamService.Service
	users  userRepository.Repository
	logger *zap.SugaredLogger
}

// New creates a new cleanup service instance.
func New(teams teamRepository.Repository, mutate teamService.Service, users userRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{teams: teams, mutate: mutate, users: users, logger: logger}
}

// ReconcileUserDeletion removes the user's profile and vacates the
// user's seat in every team holding a member row for them.
func (s *service) ReconcileUserDeletion(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		// Profile deletion failing must not leave teams unreconciled.
		s.logger.Errorw("profile deletion failed, continuing with teams", "user_id", userID, "error", err)
	}

	teamIDs, err := s.teams.TeamIDsWithUser(ctx, userID)
	if err != nil {
		s.logger.Errorw("failed to list teams for deleted user", "user_id", userID, "error", err)
		return err
	}

	failed := 0
	for _, teamID := range teamIDs {
		err := s.mutate.Vacate(ctx, teamID, userID)
		if err != nil && !errors.Is(err, teamModel.ErrTeamNotFound) {
			s.logger.Errorw("failed to vacate team for deleted user", "team_id", teamID, "user_id", userID, "error", err)
			failed++
		}
	}

	s.logger.Infow("user deletion reconciled", "user_id", userID, "teams", len(teamIDs), "failed", failed)
	return nil
}
