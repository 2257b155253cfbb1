package model

import "errors"

var (
	// ErrHackathonNotFound is returned when a hackathon does not exist.
	ErrHackathonNotFound = errors.New("hackathon not found")

	// ErrInvalidName is returned when the hackathon name is empty.
	ErrInvalidName = errors.New("name must not be empty")

	// ErrInvalidDates is returned when end_date is not after start_date.
	ErrInvalidDates = errors.New("end_date must be after start_date")

	// ErrInvalidFilter is returned for an unknown list filter value.
	ErrInvalidFilter = errors.New("filter must be one of all, upcoming, ongoing, past")
)
