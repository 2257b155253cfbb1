// Package service provides business logic layer for joinrequest module.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/hackteams/internal/joinrequest/model"
	"github.com/festy23/hackteams/internal/joinrequest/repository"
	teamModel "github.com/festy23/hackteams/internal/team/model"
	teamRepository "github.com/festy23/hackteams/internal/team/repository"
	teamService "github.com/festy23/hackteams/internal/team/service"
)

// Service defines the interface for join request business logic operations.
type Service interface {
	// Submit creates a pending request for the user to join the team.
	Submit(ctx context.Context, teamID, userID string) (*model.JoinRequest, error)

	// Accept applies the join and resolves the request. Leader only.
	// When the join fails (e.g. the team is full) the request stays
	// pending so it can be retried once capacity frees up. A user who
	// already holds a seat resolves the request without a second join.
	Accept(ctx context.Context, requestID, callerID string) (*teamModel.TeamResponse, error)

	// Reject resolves the request without touching the team. Leader only.
	Reject(ctx context.Context, requestID, callerID string) error

	// ListPending returns the team's pending requests. Leader only.
	ListPending(ctx context.Context, teamID, callerID string) ([]model.JoinRequest, error)
}

type service struct {
	repo   repository.Repository
	teams  teamRepository.Repository
	mutate teamService.Service
	logger *zap.SugaredLogger
}

// New creates a new join request service instance.
func New(repo repository.Repository, teams teamRepository.Repository, mutate teamService.Service, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, teams: teams, mutate: mutate, logger: logger}
}

// Submit creates a pending request for the user to join the team.
func (s *service) Submit(ctx context.Context, teamID, userID string) (*model.JoinRequest, error) {
	team, err := s.teams.GetWithMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.IsActiveMember(userID) {
		return nil, teamModel.ErrAlreadyMember
	}

	pending, err := s.repo.HasPending(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, model.ErrDuplicatePending
	}

	request := &model.JoinRequest{
		ID:     uuid.NewString(),
		TeamID: teamID,
		UserID: userID,
		Status: model.StatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		s.logger.Errorw("submit join request failed", "team_id", teamID, "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Infow("join request submitted", "request_id", request.ID, "team_id", teamID, "user_id", userID)
	return request, nil
}

// Accept applies the join and resolves the request.
func (s *service) Accept(ctx context.Context, requestID, callerID string) (*teamModel.TeamResponse, error) {
	request, err := s.requireLeader(ctx, requestID, callerID)
	if err != nil {
		return nil, err
	}

	resp, err := s.mutate.Join(ctx, request.TeamID, request.UserID)
	if err != nil {
		if errors.Is(err, teamModel.ErrAlreadyMember) {
			// The user already holds a seat, either from a direct join or
			// from an earlier accept whose status write did not land.
			// Resolve the request instead of wedging it.
			return s.resolveAccepted(ctx, request)
		}
		// The request stays pending; a full team may free a seat later.
		s.logger.Infow("join request accept did not apply", "request_id", requestID, "team_id", request.TeamID, "error", err)
		return nil, err
	}

	if err := s.repo.MarkResponded(ctx, requestID, model.StatusAccepted); err != nil {
		return nil, err
	}

	s.logger.Infow("join request accepted", "request_id", requestID, "team_id", request.TeamID, "user_id", request.UserID)
	return resp, nil
}

// resolveAccepted marks the request accepted without a new join and
// returns the current roster.
func (s *service) resolveAccepted(ctx context.Context, request *model.JoinRequest) (*teamModel.TeamResponse, error) {
	if err := s.repo.MarkResponded(ctx, request.ID, model.StatusAccepted); err != nil {
		return nil, err
	}

	team, err := s.teams.GetWithMembers(ctx, request.TeamID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("join request accepted", "request_id", request.ID, "team_id", request.TeamID, "user_id", request.UserID)
	return teamModel.NewTeamResponse(team), nil
}

// Reject resolves the request without touching the team.
func (s *service) Reject(ctx context.Context, requestID, callerID string) error {
	request, err := s.requireLeader(ctx, requestID, callerID)
	if err != nil {
		return err
	}

	if err := s.repo.MarkResponded(ctx, requestID, model.StatusRejected); err != nil {
		return err
	}

	s.logger.Infow("join request rejected", "request_id", requestID, "team_id", request.TeamID, "user_id", request.UserID)
	return nil
}

// ListPending returns the team's pending requests.
func (s *service) ListPending(ctx context.Context, teamID, callerID string) ([]model.JoinRequest, error) {
	team, err := s.teams.GetWithMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	leader := team.ActiveLeader()
	if leader == nil || leader.UserID != callerID {
		return nil, teamModel.ErrNotLeader
	}

	return s.repo.ListPendingByTeam(ctx, teamID)
}

// requireLeader loads the request and verifies the caller leads its team
// and the request is still pending.
func (s *service) requireLeader(ctx context.Context, requestID, callerID string) (*model.JoinRequest, error) {
	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	team, err := s.teams.GetWithMembers(ctx, request.TeamID)
	if err != nil {
		return nil, err
	}

	leader := team.ActiveLeader()
	if leader == nil || leader.UserID != callerID {
		return nil, teamModel.ErrNotLeader
	}

	if request.Status != model.StatusPending {
		return nil, model.ErrRequestNotPending
	}

	return request, nil
}
