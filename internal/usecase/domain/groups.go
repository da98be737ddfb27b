// Package domain contains application usecases orchestrating the fill run.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
)

// FillGroups enumerates all groups once, applies the skip rules and
// ensures every validated user is a member of each surviving group at
// the configured access level. Existing memberships are left untouched.
func (u *Usecase) FillGroups(ctx context.Context, users []entities.User, opts entities.FillOptions) (entities.Report, error) {
	var report entities.Report

	exclude := make(map[string]struct{}, len(opts.ExcludeGroups))
	for _, e := range opts.ExcludeGroups {
		exclude[e] = struct{}{}
	}

	listCtx, cancel := withTimeout(ctx, u.timeout)
	groups, err := u.repo.ListGroups(listCtx)
	cancel()
	if err != nil {
		return report, err
	}

	for _, listed := range groups {
		opCtx, cancel := withTimeout(ctx, u.timeout)
		group, err := u.repo.GetGroup(opCtx, listed.ID)
		cancel()
		if err != nil {
			return report, fmt.Errorf("get group %q: %w", listed.FullPath, err)
		}
		report.TotalGroups++

		skip, err := u.skipGroup(ctx, *group, exclude, opts)
		if err != nil {
			return report, err
		}
		if skip {
			continue
		}

		u.log.Infow("work with group", "group", group.FullPath)
		report.MatchingGroups++

		added, err := u.fillGroup(ctx, *group, users, opts.AccessLevel)
		if err != nil {
			return report, err
		}
		report.UsersAdded += added
	}

	return report, nil
}

// skipGroup applies the filter predicates in order, short-circuiting on
// the first match. The project count is fetched only when the blank-group
// rule is actually reached.
func (u *Usecase) skipGroup(ctx context.Context, group entities.Group, exclude map[string]struct{}, opts entities.FillOptions) (bool, error) {
	if _, ok := exclude[strconv.Itoa(group.ID)]; ok {
		u.log.Debugw("group skipped by rule", "group", group.FullPath)
		return true, nil
	}
	if _, ok := exclude[group.FullPath]; ok {
		u.log.Debugw("group skipped by rule", "group", group.FullPath)
		return true, nil
	}

	if opts.SkipNested && group.Nested() {
		u.log.Debugw("nested group skipped", "group", group.FullPath)
		return true, nil
	}

	if opts.SkipBlank {
		opCtx, cancel := withTimeout(ctx, u.timeout)
		count, err := u.repo.CountGroupProjects(opCtx, group.ID)
		cancel()
		if err != nil {
			return false, fmt.Errorf("count projects of group %q: %w", group.FullPath, err)
		}
		if count < 1 {
			u.log.Debugw("blank group skipped", "group", group.FullPath)
			return true, nil
		}
	}

	return false, nil
}

// fillGroup ensures every user holds a membership in the group and
// returns the number of memberships created.
func (u *Usecase) fillGroup(ctx context.Context, group entities.Group, users []entities.User, level entities.AccessLevel) (int, error) {
	added := 0
	for _, user := range users {
		opCtx, cancel := withTimeout(ctx, u.timeout)
		_, err := u.repo.GetGroupMember(opCtx, group.ID, user.ID)
		cancel()

		switch {
		case err == nil:
			// Already a member; existing levels are never escalated.

		case errors.Is(err, entities.ErrMemberNotFound):
			addCtx, cancel := withTimeout(ctx, u.timeout)
			_, err := u.repo.AddGroupMember(addCtx, group.ID, user.ID, level)
			cancel()
			if err != nil {
				return added, fmt.Errorf("error in group %q: %w", group.FullPath, err)
			}
			u.log.Infow("added user to group",
				"username", user.Username, "group", group.FullPath, "access_level", level.String())
			added++

		default:
			u.log.Errorw("failed to get member of group",
				"username", user.Username, "group", group.FullPath, "error", err)
		}
	}

	return added, nil
}
