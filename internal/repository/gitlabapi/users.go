package gitlabapi

import (
	"context"
	"fmt"
	"strconv"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/mapper"
)

// FindUser resolves an identifier into a GitLab user. Numeric identifiers
// are looked up by ID, anything else by exact username.
func (g *GitLab) FindUser(ctx context.Context, identifier string) (*entities.User, error) {
	if identifier == "" {
		return nil, entities.ErrUserNotFound
	}

	if id, convErr := strconv.Atoi(identifier); convErr == nil {
		user, resp, err := g.client.Users.GetUser(id, gitlab.GetUsersOptions{}, gitlab.WithContext(ctx))
		if err != nil {
			if isNotFound(resp) {
				return nil, entities.ErrUserNotFound
			}
			return nil, fmt.Errorf("get user %d: %w", id, err)
		}
		u := mapper.ToUser(user)
		return &u, nil
	}

	users, _, err := g.client.Users.ListUsers(
		&gitlab.ListUsersOptions{Username: gitlab.Ptr(identifier)},
		gitlab.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", identifier, err)
	}
	if len(users) == 0 {
		return nil, entities.ErrUserNotFound
	}

	u := mapper.ToUser(users[0])
	return &u, nil
}
