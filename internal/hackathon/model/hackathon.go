// Package model contains domain models for the hackathon module.
package model

import "time"

// Hackathon represents a hackathon event teams are formed for.
type Hackathon struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   time.Time `gorm:"not null;index" json:"start_date"`
	EndDate     time.Time `gorm:"not null;index" json:"end_date"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	IsVirtual   bool      `gorm:"default:false" json:"is_virtual"`
	Prize       string    `gorm:"type:varchar(255)" json:"prize"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Hackathon model.
func (Hackathon) TableName() string {
	return "hackathons"
}

// Filter selects hackathons by their position relative to now.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterUpcoming Filter = "upcoming"
	FilterOngoing  Filter = "ongoing"
	FilterPast     Filter = "past"
)

// Valid reports whether the filter is one of the known values.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterUpcoming, FilterOngoing, FilterPast:
		return true
	}
	return false
}
