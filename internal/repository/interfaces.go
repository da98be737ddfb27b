// Package repository contains repository interfaces for remote backends.
package repository

import (
	"context"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
)

// LifecycleInterface describes backend startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	// FindUser resolves an identifier, numeric ID or username, into a
	// user. Returns entities.ErrUserNotFound when it does not exist.
	FindUser(ctx context.Context, identifier string) (*entities.User, error)
}

// GroupInterface exposes group-related operations.
type GroupInterface interface {
	ListGroups(ctx context.Context) ([]entities.Group, error)
	GetGroup(ctx context.Context, groupID int) (*entities.Group, error)
	CountGroupProjects(ctx context.Context, groupID int) (int, error)
}

// MemberInterface exposes group membership operations.
type MemberInterface interface {
	// GetGroupMember returns entities.ErrMemberNotFound when the user has
	// no membership in the group.
	GetGroupMember(ctx context.Context, groupID, userID int) (*entities.Membership, error)
	AddGroupMember(ctx context.Context, groupID, userID int, level entities.AccessLevel) (*entities.Membership, error)
}
