package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prestic-org/prestic-cli/internal/usecase"
)

const timeRounding = 10 * time.Millisecond

// RunRenderer renders the outcome of a backup tool invocation.
type RunRenderer struct {
	out io.Writer
}

// NewRunRenderer creates a new run renderer
func NewRunRenderer(out io.Writer) *RunRenderer {
	return &RunRenderer{out: out}
}

// Render renders the run summary. Tool output has already been streamed, so
// only the verdict is printed here.
func (r *RunRenderer) Render(result *usecase.RunBackupResult) error {
	if result.Run == nil {
		return nil
	}

	if result.Run.Success {
		fmt.Fprintf(r.out, "✅ %s %s completed in %s\n",
			result.ProfileName, result.Command, result.Run.Duration.Round(timeRounding))
		return nil
	}

	fmt.Fprintf(r.out, "❌ %s %s failed (exit code %d)\n",
		result.ProfileName, result.Command, result.Run.ExitCode)
	fmt.Fprintf(r.out, "   command: restic %s\n", strings.Join(result.Args, " "))
	return nil
}

var _ Renderer[*usecase.RunBackupResult] = (*RunRenderer)(nil)
