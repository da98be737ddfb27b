package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
)

func TestToUser(t *testing.T) {
	u := ToUser(&gitlab.User{ID: 7, Username: "alice", Name: "Alice"})

	require.Equal(t, entities.User{ID: 7, Username: "alice", Name: "Alice"}, u)
}

func TestToGroup(t *testing.T) {
	g := ToGroup(&gitlab.Group{ID: 42, Name: "team", FullPath: "org/team", ParentID: 3})

	require.Equal(t, entities.Group{ID: 42, Name: "team", FullPath: "org/team", ParentID: 3}, g)
	require.True(t, g.Nested())
}

func TestToGroupTopLevel(t *testing.T) {
	g := ToGroup(&gitlab.Group{ID: 1, Name: "org", FullPath: "org"})

	require.Zero(t, g.ParentID)
	require.False(t, g.Nested())
}

func TestToMembership(t *testing.T) {
	m := ToMembership(42, &gitlab.GroupMember{
		ID:          7,
		Username:    "alice",
		AccessLevel: gitlab.DeveloperPermissions,
	})

	require.Equal(t, entities.Membership{
		GroupID:     42,
		UserID:      7,
		Username:    "alice",
		AccessLevel: entities.DeveloperAccess,
	}, m)
}
