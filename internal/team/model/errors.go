package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrInvalidMaxMembers indicates a capacity below the minimum of 2.
	ErrInvalidMaxMembers = errors.New("max_members must be at least 2")
	// ErrInvalidHackathon indicates a missing hackathon reference.
	ErrInvalidHackathon = errors.New("hackathon_id is required")
	// ErrAlreadyMember indicates the user already holds an active seat on this team.
	ErrAlreadyMember = errors.New("user is already a member of this team")
	// ErrTeamFull indicates no free seat remains.
	ErrTeamFull = errors.New("team is full")
	// ErrAlreadyInHackathonTeam indicates the user is active in another team
	// of the same hackathon.
	ErrAlreadyInHackathonTeam = errors.New("user is already in a team for this hackathon")
	// ErrNotLeader indicates the caller does not hold the leader role.
	ErrNotLeader = errors.New("caller is not the team leader")
	// ErrVersionConflict indicates a concurrent mutation won the write race.
	ErrVersionConflict = errors.New("team version conflict")
)
