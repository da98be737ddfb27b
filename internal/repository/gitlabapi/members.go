package gitlabapi

import (
	"context"
	"fmt"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/mapper"
)

// GetGroupMember fetches an existing membership of the user in the group.
func (g *GitLab) GetGroupMember(ctx context.Context, groupID, userID int) (*entities.Membership, error) {
	member, resp, err := g.client.GroupMembers.GetGroupMember(groupID, userID, gitlab.WithContext(ctx))
	if err != nil {
		if isNotFound(resp) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member %d of group %d: %w", userID, groupID, err)
	}

	m := mapper.ToMembership(groupID, member)
	return &m, nil
}

// AddGroupMember creates a membership at the given access level.
func (g *GitLab) AddGroupMember(ctx context.Context, groupID, userID int, level entities.AccessLevel) (*entities.Membership, error) {
	member, _, err := g.client.GroupMembers.AddGroupMember(groupID, &gitlab.AddGroupMemberOptions{
		UserID:      gitlab.Ptr(userID),
		AccessLevel: gitlab.Ptr(gitlab.AccessLevelValue(level)),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("add member %d to group %d: %w", userID, groupID, err)
	}

	m := mapper.ToMembership(groupID, member)
	return &m, nil
}
