package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/repository"
	"github.com/WoozyMasta/gitlab-groups-filling-with-users/internal/usecase/domain"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	GroupUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
