package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/pkg/env"
)

func resolverFrom(vars map[string]string) env.Resolver {
	return env.NewResolver(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

func TestBuildDefaults(t *testing.T) {
	cfg, err := build(resolverFrom(map[string]string{
		"GITLAB_PRIVATE_TOKEN": "secret",
	}))
	require.NoError(t, err)

	require.Equal(t, "https://gitlab.com", cfg.GitLab.URL)
	require.Equal(t, "secret", cfg.GitLab.Token)
	require.Empty(t, cfg.Filler.Users)
	require.Empty(t, cfg.Filler.ExcludeGroups)
	require.True(t, cfg.Filler.SkipBlank)
	require.True(t, cfg.Filler.SkipNested)
	require.Equal(t, entities.DeveloperAccess, cfg.Filler.AccessLevel)
	require.Empty(t, cfg.Filler.Schedule)
	require.Equal(t, time.Duration(0), cfg.HTTP.RequestTimeout)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestBuildMissingToken(t *testing.T) {
	_, err := build(resolverFrom(nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "GITLAB_PRIVATE_TOKEN")
}

func TestBuildAlternateKeys(t *testing.T) {
	cfg, err := build(resolverFrom(map[string]string{
		"GITLAB_TOKEN":  "ci-token",
		"CI_SERVER_URL": "https://gitlab.example.com",
	}))
	require.NoError(t, err)

	require.Equal(t, "ci-token", cfg.GitLab.Token)
	require.Equal(t, "https://gitlab.example.com", cfg.GitLab.URL)
}

func TestBuildPrimaryKeyWins(t *testing.T) {
	cfg, err := build(resolverFrom(map[string]string{
		"GITLAB_PRIVATE_TOKEN": "primary",
		"GITLAB_TOKEN":         "alternate",
	}))
	require.NoError(t, err)
	require.Equal(t, "primary", cfg.GitLab.Token)
}

func TestBuildLists(t *testing.T) {
	cfg, err := build(resolverFrom(map[string]string{
		"GITLAB_PRIVATE_TOKEN":  "secret",
		"GITLAB_FILLING_USERS":  "b,a,b",
		"GITLAB_EXCLUDE_GROUPS": "42,org/infra",
	}))
	require.NoError(t, err)

	require.Equal(t, []string{"b", "a", "b"}, cfg.Filler.Users)
	require.Equal(t, []string{"42", "org/infra"}, cfg.Filler.ExcludeGroups)
}

func TestBuildRejectsUnknownAccessLevel(t *testing.T) {
	_, err := build(resolverFrom(map[string]string{
		"GITLAB_PRIVATE_TOKEN":      "secret",
		"GITLAB_USERS_ACCESS_LEVEL": "25",
	}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "access level")
}

func TestBuildBooleanFlags(t *testing.T) {
	cfg, err := build(resolverFrom(map[string]string{
		"GITLAB_PRIVATE_TOKEN": "secret",
		"SKIP_BLANK_GROUPS":    "no",
		"SKIP_NESTED_GROUPS":   "off",
	}))
	require.NoError(t, err)

	require.False(t, cfg.Filler.SkipBlank)
	require.False(t, cfg.Filler.SkipNested)
}
