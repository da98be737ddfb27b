// Package mapper converts GitLab API models into domain entities.
package mapper

import (
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
)

// ToUser builds an entities.User from the API model.
func ToUser(src *gitlab.User) entities.User {
	return entities.User{
		ID:       src.ID,
		Username: src.Username,
		Name:     src.Name,
	}
}

// ToGroup builds an entities.Group from the API model. A zero ParentID
// marks a top-level group.
func ToGroup(src *gitlab.Group) entities.Group {
	return entities.Group{
		ID:       src.ID,
		Name:     src.Name,
		FullPath: src.FullPath,
		ParentID: src.ParentID,
	}
}

// ToMembership builds an entities.Membership from the API member model.
func ToMembership(groupID int, src *gitlab.GroupMember) entities.Membership {
	return entities.Membership{
		GroupID:     groupID,
		UserID:      src.ID,
		Username:    src.Username,
		AccessLevel: entities.AccessLevel(src.AccessLevel),
	}
}
