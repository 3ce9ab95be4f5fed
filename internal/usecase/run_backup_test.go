package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prestic-org/prestic-cli/internal/config"
	"github.com/prestic-org/prestic-cli/internal/domain"
)

type fakeRunner struct {
	req    domain.RunRequest
	result *domain.RunResult
}

func (f *fakeRunner) Run(ctx context.Context, req domain.RunRequest) (*domain.RunResult, error) {
	f.req = req
	if f.result != nil {
		return f.result, nil
	}
	return &domain.RunResult{Success: true}, nil
}

func TestRunBackup(t *testing.T) {
	t.Run("builds argv from the resolved profile", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{
			"default": {
				"repository": "/backup",
				"no-cache":   true,
			},
		})
		runner := &fakeRunner{}

		result, err := NewRunBackup(cfg, runner, testLogger()).Run(context.Background(),
			RunBackupParams{Command: "backup", ExtraArgs: []string{"/home"}})
		require.NoError(t, err)

		assert.Equal(t, []string{"backup", "--repo", "/backup", "--no-cache", "/home"}, runner.req.Args)
		assert.Equal(t, "backup", result.Command)
		assert.True(t, result.Run.Success)
	})

	t.Run("defaults to the snapshots command", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{"default": {}})
		runner := &fakeRunner{}

		result, err := NewRunBackup(cfg, runner, testLogger()).Run(context.Background(), RunBackupParams{})
		require.NoError(t, err)

		assert.Equal(t, "snapshots", result.Command)
		assert.Equal(t, []string{"snapshots"}, runner.req.Args)
	})

	t.Run("exports repository and password file in the environment", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{
			"default": {
				"repository":    "/backup",
				"password-file": "key.txt",
			},
		})
		runner := &fakeRunner{}

		_, err := NewRunBackup(cfg, runner, testLogger()).Run(context.Background(), RunBackupParams{})
		require.NoError(t, err)

		assert.Contains(t, runner.req.Env, "RESTIC_REPOSITORY=/backup")
		assert.Contains(t, runner.req.Env, "RESTIC_PASSWORD_FILE=key.txt")
	})

	t.Run("inherited settings flow into the invocation", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{
			"parent":  {"repository": "/backup"},
			"default": {"inherit": "parent"},
		})
		runner := &fakeRunner{}

		_, err := NewRunBackup(cfg, runner, testLogger()).Run(context.Background(), RunBackupParams{})
		require.NoError(t, err)

		assert.Equal(t, []string{"snapshots", "--repo", "/backup"}, runner.req.Args)
	})

	t.Run("dry run is forwarded to the runner", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{"default": {}})
		cfg.DryRun = true
		runner := &fakeRunner{}

		_, err := NewRunBackup(cfg, runner, testLogger()).Run(context.Background(), RunBackupParams{})
		require.NoError(t, err)

		assert.True(t, runner.req.DryRun)
	})

	t.Run("inheritance cycle aborts before any invocation", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{
			"default": {"inherit": "default"},
		})
		runner := &fakeRunner{}

		_, err := NewRunBackup(cfg, runner, testLogger()).Run(context.Background(), RunBackupParams{})
		require.Error(t, err)
		assert.Empty(t, runner.req.Args)
	})
}
