// Package domain contains application usecases orchestrating the fill run.
package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
)

// ValidateUsers deduplicates and sorts the configured identifiers, then
// confirms each one against GitLab. Unknown identifiers are dropped with
// an error log; any other lookup failure aborts the run. Survivors are
// collected into a new slice, preserving sort order.
func (u *Usecase) ValidateUsers(ctx context.Context, identifiers []string) ([]entities.User, error) {
	ids := slices.Clone(identifiers)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	valid := make([]entities.User, 0, len(ids))
	for _, id := range ids {
		opCtx, cancel := withTimeout(ctx, u.timeout)
		user, err := u.repo.FindUser(opCtx, id)
		cancel()
		if err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				u.log.Errorw("user ignored, does not exist in GitLab", "user", id)
				continue
			}
			return nil, fmt.Errorf("check user %q: %w", id, err)
		}

		u.log.Infow("user found and will be used", "username", user.Username, "user_id", user.ID)
		valid = append(valid, *user)
	}

	return valid, nil
}
