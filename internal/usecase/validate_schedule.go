package usecase

import (
	"context"
	"log/slog"
)

// ValidateScheduleParams contains the expression to validate.
type ValidateScheduleParams struct {
	Expression string
}

// ValidateScheduleResult reports whether the expression was accepted.
type ValidateScheduleResult struct {
	Expression string
	Valid      bool
	Reason     string
}

// ValidateSchedule checks a calendar expression against the host scheduler.
type ValidateSchedule struct {
	checker ScheduleChecker
	log     *slog.Logger
}

// NewValidateSchedule creates a new ValidateSchedule use case
func NewValidateSchedule(checker ScheduleChecker, log *slog.Logger) *ValidateSchedule {
	return &ValidateSchedule{
		checker: checker,
		log:     log.With("component", "ValidateSchedule"),
	}
}

// Run executes the validate schedule use case
func (uc *ValidateSchedule) Run(ctx context.Context, params ValidateScheduleParams) (*ValidateScheduleResult, error) {
	result := &ValidateScheduleResult{Expression: params.Expression, Valid: true}

	if err := uc.checker.Check(ctx, params.Expression); err != nil {
		result.Valid = false
		result.Reason = err.Error()
	}

	return result, nil
}
