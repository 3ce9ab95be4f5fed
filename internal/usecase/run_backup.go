package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prestic-org/prestic-cli/internal/config"
	"github.com/prestic-org/prestic-cli/internal/domain"
	"github.com/prestic-org/prestic-cli/internal/profile"
)

// RunBackupParams contains parameters for one backup tool invocation.
type RunBackupParams struct {
	ProfileName string
	Command     string
	ExtraArgs   []string
}

// RunBackupResult wraps the tool invocation outcome with the resolved
// profile context.
type RunBackupResult struct {
	ProfileName string
	Command     string
	Args        []string
	Run         *domain.RunResult
}

// RunBackup resolves a profile and hands the rendered arguments to the
// backup tool runner.
type RunBackup struct {
	config *config.RuntimeConfig
	runner ResticRunner
	log    *slog.Logger
}

// NewRunBackup creates a new RunBackup use case
func NewRunBackup(cfg *config.RuntimeConfig, runner ResticRunner, log *slog.Logger) *RunBackup {
	return &RunBackup{
		config: cfg,
		runner: runner,
		log:    log.With("component", "RunBackup"),
	}
}

// Run executes the run backup use case
func (uc *RunBackup) Run(ctx context.Context, params RunBackupParams) (*RunBackupResult, error) {
	name := params.ProfileName
	if name == "" {
		name = uc.config.ProfileName
	}

	var opts []profile.Option
	if uc.config.StrictInheritance {
		opts = append(opts, profile.WithStrictInheritance())
	}

	p := profile.New(uc.config.Store, name, opts...)
	if err := p.Resolve(); err != nil {
		return nil, err
	}

	command := params.Command
	if command == "" {
		command = "snapshots"
	}

	args := append([]string{command}, p.CommandArgs()...)
	args = append(args, params.ExtraArgs...)

	req := domain.RunRequest{
		Command: command,
		Args:    args,
		Env:     buildEnv(p),
		DryRun:  uc.config.DryRun,
	}

	uc.log.Debug("running backup tool", "profile", name, "args", args)

	run, err := uc.runner.Run(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to run backup tool: %w", err)
	}

	return &RunBackupResult{
		ProfileName: name,
		Command:     command,
		Args:        args,
		Run:         run,
	}, nil
}

// buildEnv builds the extra environment for the backup tool from resolved
// profile settings. Values already rendered as flags are not duplicated
// except the repository, which restic also accepts via environment and
// which other tooling in the chain may want to see.
func buildEnv(p *profile.Profile) []string {
	var env []string
	if repo := p.Repository(); repo != "" {
		env = append(env, fmt.Sprintf("RESTIC_REPOSITORY=%s", repo))
	}
	if pw, ok := p.Settings()["password-file"]; ok && pw.Kind() == domain.KindString {
		env = append(env, fmt.Sprintf("RESTIC_PASSWORD_FILE=%s", pw.String()))
	}
	return env
}
