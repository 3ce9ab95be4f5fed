//go:build linux

package schedule

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Checker validates calendar expressions with systemd-analyze.
type Checker struct {
	log *slog.Logger
}

// NewChecker creates a new schedule checker
func NewChecker(log *slog.Logger) *Checker {
	return &Checker{log: log.With("component", "ScheduleChecker")}
}

// Check runs `systemd-analyze calendar` on the expression and returns the
// tool's complaint when the expression is rejected.
func (c *Checker) Check(ctx context.Context, expression string) error {
	if expression == "" {
		return errors.New("empty schedule")
	}

	cmd := exec.CommandContext(ctx, "systemd-analyze", "calendar", expression)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("invalid schedule %q: %s", expression, msg)
		}
		return fmt.Errorf("invalid schedule %q: %w", expression, err)
	}

	c.log.Debug("schedule accepted", "expression", expression, "analysis", string(output))
	return nil
}
