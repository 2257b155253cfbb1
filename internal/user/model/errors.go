package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID indicates that the provided user ID is invalid (e.g., empty).
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrInvalidDisplayName indicates a missing display name.
	ErrInvalidDisplayName = errors.New("display_name is required")
)
