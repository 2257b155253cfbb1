package model

import "time"

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	HackathonID string `json:"hackathon_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MaxMembers  int    `json:"max_members" binding:"required"`
}

// MemberResponse represents one seat of a team in API responses.
type MemberResponse struct {
	UserID     string     `json:"user_id"`
	Role       Role       `json:"role"`
	JoinedAt   time.Time  `json:"joined_at"`
	PromotedAt *time.Time `json:"promoted_at,omitempty"`
}

// TeamResponse represents a team with its member roster.
type TeamResponse struct {
	ID           string           `json:"id"`
	HackathonID  string           `json:"hackathon_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	MaxMembers   int              `json:"max_members"`
	Status       string           `json:"status"`
	ActiveCount  int              `json:"active_members"`
	VacancyCount int              `json:"vacancy_count"`
	Members      []MemberResponse `json:"members"`
}

// NewTeamResponse builds the API view of a team, exposing only active
// seats in the roster.
func NewTeamResponse(t *Team) *TeamResponse {
	members := make([]MemberResponse, 0, len(t.Members))
	for _, m := range t.ActiveMembers() {
		members = append(members, MemberResponse{
			UserID:     m.UserID,
			Role:       m.Role,
			JoinedAt:   m.JoinedAt,
			PromotedAt: m.PromotedAt,
		})
	}
	return &TeamResponse{
		ID:           t.ID,
		HackathonID:  t.HackathonID,
		Name:         t.Name,
		Description:  t.Description,
		MaxMembers:   t.MaxMembers,
		Status:       t.Status,
		ActiveCount:  t.ActiveCount(),
		VacancyCount: t.VacancyCount(),
		Members:      members,
	}
}
