package gitlabapi

import (
	"context"
	"fmt"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/mapper"
)

const perPage = 100

// ListGroups returns every group visible to the token, walking all pages.
func (g *GitLab) ListGroups(ctx context.Context) ([]entities.Group, error) {
	opt := &gitlab.ListGroupsOptions{
		ListOptions: gitlab.ListOptions{PerPage: perPage, Page: 1},
	}

	var all []entities.Group
	for {
		groups, resp, err := g.client.Groups.ListGroups(opt, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("list groups: %w", err)
		}
		for _, group := range groups {
			all = append(all, mapper.ToGroup(group))
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return all, nil
}

// GetGroup re-fetches the full group record by ID.
func (g *GitLab) GetGroup(ctx context.Context, groupID int) (*entities.Group, error) {
	group, resp, err := g.client.Groups.GetGroup(groupID, &gitlab.GetGroupOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		if isNotFound(resp) {
			return nil, entities.ErrGroupNotFound
		}
		return nil, fmt.Errorf("get group %d: %w", groupID, err)
	}

	res := mapper.ToGroup(group)
	return &res, nil
}

// CountGroupProjects returns the number of projects directly attached to
// the group, taken from the total of a single-item page.
func (g *GitLab) CountGroupProjects(ctx context.Context, groupID int) (int, error) {
	opt := &gitlab.ListGroupProjectsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 1, Page: 1},
	}

	_, resp, err := g.client.Groups.ListGroupProjects(groupID, opt, gitlab.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("list projects of group %d: %w", groupID, err)
	}

	return resp.TotalItems, nil
}
