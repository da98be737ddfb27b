package usecase

import (
	"context"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
)

// UserUsecaseInterface abstracts user validation for the entrypoint.
type UserUsecaseInterface interface {
	ValidateUsers(ctx context.Context, identifiers []string) ([]entities.User, error)
}

// GroupUsecaseInterface abstracts the group membership fill run.
type GroupUsecaseInterface interface {
	FillGroups(ctx context.Context, users []entities.User, opts entities.FillOptions) (entities.Report, error)
}
