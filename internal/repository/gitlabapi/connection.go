// Package gitlabapi implements the repository against the GitLab REST API.
package gitlabapi

import (
	"context"
	"fmt"
	"net/http"

	gitlab "gitlab.com/gitlab-org/api/client-go"
	"go.uber.org/zap"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/config"
)

// GitLab wraps an authenticated API client and configuration.
type GitLab struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	client  *gitlab.Client
	cfg     config.GitLabConfig
}

// New creates a GitLab repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *GitLab {
	return &GitLab{
		baseCtx: ctx,
		log:     log.Named("repo.gitlab"),
		cfg:     cfg.GitLab,
	}
}

// OnStart builds the API client and verifies the token with a
// current-user call.
func (g *GitLab) OnStart(_ context.Context) error {
	client, err := gitlab.NewClient(g.cfg.Token, gitlab.WithBaseURL(g.cfg.URL))
	if err != nil {
		return fmt.Errorf("build gitlab client: %w", err)
	}

	user, resp, err := client.Users.CurrentUser(gitlab.WithContext(g.baseCtx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("can't login to GitLab %q: %w", g.cfg.URL, err)
		}
		return fmt.Errorf("can't connect to GitLab %q: %w", g.cfg.URL, err)
	}

	g.client = client
	g.log.Infow("logged in to GitLab", "url", g.cfg.URL, "username", user.Username)
	return nil
}

// OnStop releases nothing: the HTTP client holds no resources beyond
// pooled connections.
func (g *GitLab) OnStop(_ context.Context) error {
	return nil
}

func isNotFound(resp *gitlab.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}
