package model

// UpsertProfileRequest represents the request to create or update the
// caller's profile.
type UpsertProfileRequest struct {
	DisplayName    string   `json:"display_name" binding:"required"`
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
	GitHubUsername string   `json:"github_username"`
	LookingForTeam bool     `json:"looking_for_team"`
}

// ProfileResponse represents a profile in API responses.
type ProfileResponse struct {
	User User `json:"user"`
}
