package restic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"

	"github.com/prestic-org/prestic-cli/internal/domain"
)

// Executor handles backup tool execution with streaming output.
type Executor struct {
	log    *slog.Logger
	binary string
	out    io.Writer
}

// NewExecutor creates a new executor for the given binary ("restic" when
// empty).
func NewExecutor(binary string, log *slog.Logger) *Executor {
	if binary == "" {
		binary = "restic"
	}
	return &Executor{
		log:    log.With("component", "ResticExecutor"),
		binary: binary,
		out:    os.Stdout,
	}
}

// SetOutput redirects streamed tool output, mainly for tests.
func (e *Executor) SetOutput(out io.Writer) {
	e.out = out
}

// Run executes the backup tool with the prepared arguments. Output streams
// to the console through a PTY so the tool keeps its progress display and
// colors, while a copy is captured for the result.
func (e *Executor) Run(ctx context.Context, req domain.RunRequest) (*domain.RunResult, error) {
	if req.DryRun {
		fmt.Fprintf(e.out, "dry-run: %s %s\n", e.binary, strings.Join(req.Args, " "))
		return &domain.RunResult{Success: true}, nil
	}

	start := time.Now()
	e.log.Debug("running backup tool", "binary", e.binary, "args", req.Args)

	cmd := exec.CommandContext(ctx, e.binary, req.Args...)
	cmd.Env = append(os.Environ(), req.Env...)

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to start pty: %w", err)
	}
	defer func() {
		// Close PTY after command finishes to avoid read errors
		_ = ptyFile.Close()
	}()

	var outputBuffer bytes.Buffer
	// The PTY read returns an error once the child exits; that is expected
	// and not a failure.
	_, _ = io.Copy(io.MultiWriter(e.out, &outputBuffer), ptyFile)

	result := &domain.RunResult{
		Success:  true,
		Output:   outputBuffer.Bytes(),
		Duration: time.Since(start),
	}

	if err := cmd.Wait(); err != nil {
		result.Success = false
		result.Error = fmt.Errorf("%s %s failed: %w", e.binary, req.Command, err)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		e.log.Error("backup tool failed",
			"command", req.Command, "exit_code", result.ExitCode, "duration", result.Duration)
		return result, nil
	}

	e.log.Debug("backup tool completed", "command", req.Command, "duration", result.Duration)
	return result, nil
}
