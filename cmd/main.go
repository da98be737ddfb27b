// Package main wires the GitLab group membership filler.
package main

import (
	"context"
	"math"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/config"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/entities"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/repository"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/usecase"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/pkg/logger"
)

func main() {
	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "gitlab", log, cfg)
	if err != nil {
		log.Fatalw("repository initialization error", "error", err)
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Fatalw("repository start error", "error", err)
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout)

	log.Infow("access level for filled users", "access_level", cfg.Filler.AccessLevel.String())

	if cfg.Filler.Schedule == "" {
		if err := runOnce(ctx, log, uc, cfg, start); err != nil {
			log.Fatalw("run failed", "error", err)
		}
		return
	}

	// Scheduled mode: stay up and repeat the fill; a failed run is
	// logged but does not stop the schedule.
	c := cron.New()
	if _, err := c.AddFunc(cfg.Filler.Schedule, func() {
		if err := runOnce(ctx, log, uc, cfg, time.Now()); err != nil {
			log.Errorw("scheduled run failed", "error", err)
		}
	}); err != nil {
		log.Fatalw("invalid schedule", "schedule", cfg.Filler.Schedule, "error", err)
	}

	log.Infow("running on schedule", "schedule", cfg.Filler.Schedule)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
}

// runOnce validates the configured users, fills the matching groups and
// logs the run summary.
func runOnce(ctx context.Context, log *zap.SugaredLogger, uc usecase.InterfaceUsecase, cfg *config.Config, start time.Time) error {
	users, err := uc.ValidateUsers(ctx, cfg.Filler.Users)
	if err != nil {
		return err
	}

	report, err := uc.FillGroups(ctx, users, entities.FillOptions{
		ExcludeGroups: cfg.Filler.ExcludeGroups,
		SkipBlank:     cfg.Filler.SkipBlank,
		SkipNested:    cfg.Filler.SkipNested,
		AccessLevel:   cfg.Filler.AccessLevel,
	})
	if err != nil {
		return err
	}

	log.Infow("run complete",
		"users_added", report.UsersAdded,
		"matching_groups", report.MatchingGroups,
		"total_groups", report.TotalGroups,
		"elapsed_s", math.Round(time.Since(start).Seconds()*100)/100,
	)
	return nil
}
