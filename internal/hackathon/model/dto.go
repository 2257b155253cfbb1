package model

import "time"

// CreateHackathonRequest represents the request to create a hackathon.
type CreateHackathonRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Location    string    `json:"location"`
	IsVirtual   bool      `json:"is_virtual"`
	Prize       string    `json:"prize"`
	Tags        []string  `json:"tags"`
}

// HackathonResponse represents a hackathon in API responses.
type HackathonResponse struct {
	Hackathon Hackathon `json:"hackathon"`
}

// ListResponse represents a list of hackathons in API responses.
type ListResponse struct {
	Hackathons []Hackathon `json:"hackathons"`
}
