package model

import "errors"

var (
	// ErrRequestNotFound indicates that the join request does not exist.
	ErrRequestNotFound = errors.New("join request not found")
	// ErrDuplicatePending indicates the user already has a pending request
	// for this team.
	ErrDuplicatePending = errors.New("a pending join request already exists for this team")
	// ErrRequestNotPending indicates the request already reached a
	// terminal state.
	ErrRequestNotPending = errors.New("join request is not pending")
)
