// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist in GitLab.
	ErrUserNotFound = errors.New("user not found")
	// ErrMemberNotFound signals that a user has no membership in a group.
	ErrMemberNotFound = errors.New("group member not found")
	// ErrGroupNotFound signals a missing group.
	ErrGroupNotFound = errors.New("group not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
