// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/config"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/repository/gitlabapi"
)

// Repository aggregates all remote backend interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	GroupInterface
	MemberInterface
}

// New constructs a repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "gitlab":
		return gitlabapi.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
