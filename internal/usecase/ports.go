package usecase

import (
	"context"

	"github.com/prestic-org/prestic-cli/internal/domain"
)

// ResticRunner executes the external backup tool.
type ResticRunner interface {
	Run(ctx context.Context, req domain.RunRequest) (*domain.RunResult, error)
}

// ScheduleChecker validates a schedule expression with the host scheduler.
type ScheduleChecker interface {
	Check(ctx context.Context, expression string) error
}
