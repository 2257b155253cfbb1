// Package service provides business logic layer for team module.
// It is the only component that mutates a team's member rows.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	teamModel "github.com/festy23/hackteams/internal/team/model"
	"github.com/festy23/hackteams/internal/team/repository"
	"github.com/festy23/hackteams/pkg/retry"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// Create creates a team with the creator as its leader.
	Create(ctx context.Context, creatorID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// Get returns a team with its active roster.
	Get(ctx context.Context, teamID string) (*teamModel.TeamResponse, error)

	// ListByHackathon returns vacancy-aware team summaries for a hackathon.
	ListByHackathon(ctx context.Context, hackathonID string) ([]teamModel.TeamResponse, error)

	// Join adds the user to the team, reusing vacated seats where possible.
	Join(ctx context.Context, teamID, userID string) (*teamModel.TeamResponse, error)

	// Vacate releases the user's seat, promoting a successor or deleting
	// the team when no active membership survives. Idempotent.
	Vacate(ctx context.Context, teamID, userID string) error

	// Delete removes the team. The caller must be the active leader.
	Delete(ctx context.Context, teamID, callerID string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Create creates a team with the creator as its leader.
func (s *service) Create(ctx context.Context, creatorID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	if req.Name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}
	if req.HackathonID == "" {
		return nil, teamModel.ErrInvalidHackathon
	}
	if req.MaxMembers < 2 {
		return nil, teamModel.ErrInvalidMaxMembers
	}

	// Best-effort exclusivity check; see the Join comment below.
	inTeam, err := s.repo.HasActiveMemberInHackathon(ctx, req.HackathonID, creatorID, "")
	if err != nil {
		return nil, err
	}
	if inTeam {
		return nil, teamModel.ErrAlreadyInHackathonTeam
	}

	now := time.Now()
	team := &teamModel.Team{
		ID:          uuid.NewString(),
		HackathonID: req.HackathonID,
		Name:        req.Name,
		Description: req.Description,
		MaxMembers:  req.MaxMembers,
		Status:      teamModel.StatusOpen,
		Version:     1,
	}
	team.Members = []teamModel.Member{{
		TeamID:   team.ID,
		Slot:     0,
		UserID:   creatorID,
		Role:     teamModel.RoleLeader,
		JoinedAt: now,
	}}

	if err := s.repo.Create(ctx, team); err != nil {
		s.logger.Errorw("team create failed", "hackathon_id", req.HackathonID, "creator_id", creatorID, "error", err)
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "hackathon_id", team.HackathonID, "leader_id", creatorID, "max_members", team.MaxMembers)
	return teamModel.NewTeamResponse(team), nil
}

// Get returns a team with its active roster.
func (s *service) Get(ctx context.Context, teamID string) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetWithMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return teamModel.NewTeamResponse(team), nil
}

// ListByHackathon returns vacancy-aware team summaries for a hackathon.
func (s *service) ListByHackathon(ctx context.Context, hackathonID string) ([]teamModel.TeamResponse, error) {
	teams, err := s.repo.ListByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	responses := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *teamModel.NewTeamResponse(&teams[i]))
	}
	return responses, nil
}

// Join adds the user to the team. The write is a read-modify-write on the
// team's member rows guarded by the team version; on conflict the whole
// step is retried with a fresh read, so capacity can never overshoot.
//
// The one-team-per-hackathon check is a separate query issued before the
// write and is best effort: two simultaneous joins into different teams
// can both pass it. The per-team capacity invariant is the hard one.
func (s *service) Join(ctx context.Context, teamID, userID string) (*teamModel.TeamResponse, error) {
	resp, err := retry.DoWithResult(ctx, retry.ConflictConfig(), func() (*teamModel.TeamResponse, error) {
		team, err := s.repo.GetWithMembers(ctx, teamID)
		if err != nil {
			return nil, err
		}

		if team.IsActiveMember(userID) {
			return nil, teamModel.ErrAlreadyMember
		}

		inTeam, err := s.repo.HasActiveMemberInHackathon(ctx, team.HackathonID, userID, team.ID)
		if err != nil {
			return nil, err
		}
		if inTeam {
			return nil, teamModel.ErrAlreadyInHackathonTeam
		}

		if err := team.Join(userID, time.Now()); err != nil {
			return nil, err
		}

		if err := s.repo.SaveMembers(ctx, team); err != nil {
			return nil, err
		}
		return teamModel.NewTeamResponse(team), nil
	})
	if err != nil {
		s.logger.Debugw("join rejected", "team_id", teamID, "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Infow("user joined team", "team_id", teamID, "user_id", userID, "active_members", resp.ActiveCount, "max_members", resp.MaxMembers)
	return resp, nil
}

// Vacate releases the user's seat. A departing leader hands the role to
// the first active member in slot order; when no active member remains
// the team is deleted outright.
func (s *service) Vacate(ctx context.Context, teamID, userID string) error {
	return retry.Do(ctx, retry.ConflictConfig(), func() error {
		team, err := s.repo.GetWithMembers(ctx, teamID)
		if err != nil {
			return err
		}

		outcome := team.Vacate(userID, time.Now())

		if outcome.DeleteTeam {
			// Version-guarded: a join that landed after our read makes
			// this fail with a conflict, and the retry re-reads and
			// promotes instead of deleting.
			if err := s.repo.Delete(ctx, teamID, team.Version); err != nil {
				return err
			}
			s.logger.Infow("team deleted, no active members remain", "team_id", teamID, "departed_user_id", userID)
			return nil
		}

		if !outcome.Changed {
			return nil
		}

		if err := s.repo.SaveMembers(ctx, team); err != nil {
			return err
		}

		if outcome.PromotedUserID != "" {
			s.logger.Infow("leadership passed on vacate", "team_id", teamID, "departed_user_id", userID, "new_leader_id", outcome.PromotedUserID)
		} else {
			s.logger.Infow("seat vacated", "team_id", teamID, "user_id", userID)
		}
		return nil
	})
}

// Delete removes the team. The caller must be the active leader. The
// leadership check and the delete run under the usual version guard so
// a roster change between them forces a fresh read.
func (s *service) Delete(ctx context.Context, teamID, callerID string) error {
	return retry.Do(ctx, retry.ConflictConfig(), func() error {
		team, err := s.repo.GetWithMembers(ctx, teamID)
		if err != nil {
			return err
		}

		leader := team.ActiveLeader()
		if leader == nil || leader.UserID != callerID {
			return teamModel.ErrNotLeader
		}

		if err := s.repo.Delete(ctx, teamID, team.Version); err != nil {
			return err
		}

		s.logger.Infow("team deleted by leader", "team_id", teamID, "leader_id", callerID)
		return nil
	})
}
