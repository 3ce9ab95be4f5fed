//go:build !linux

package schedule

import (
	"context"
	"errors"
	"log/slog"
)

// Checker is a stub on platforms without systemd.
type Checker struct {
	log *slog.Logger
}

// NewChecker creates a new schedule checker
func NewChecker(log *slog.Logger) *Checker {
	return &Checker{log: log.With("component", "ScheduleChecker")}
}

// Check always fails: schedule validation needs systemd-analyze.
func (c *Checker) Check(ctx context.Context, expression string) error {
	return errors.New("schedule validation requires systemd and is only available on Linux")
}
