package domain

import "time"

// RunRequest describes one invocation of the backup tool: the subcommand,
// the tokenized argument list, and any extra environment variables.
type RunRequest struct {
	Command string
	Args    []string
	Env     []string

	// DryRun prints the command without executing it
	DryRun bool
}

// RunResult captures the outcome of a backup tool invocation.
type RunResult struct {
	Success  bool
	ExitCode int
	Output   []byte
	Duration time.Duration
	Error    error
}
