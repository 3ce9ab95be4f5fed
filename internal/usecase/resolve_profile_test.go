package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prestic-org/prestic-cli/internal/config"
	"github.com/prestic-org/prestic-cli/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runtimeConfig(raw config.RawConfig) *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProfileName: "default",
		Store:       config.NewStore(raw),
	}
}

func TestResolveProfile(t *testing.T) {
	t.Run("resolves the configured profile by default", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{
			"default": {"repository": "/backup", "verbose": 1},
		})

		result, err := NewResolveProfile(cfg, testLogger()).Run(context.Background(), ResolveProfileParams{})
		require.NoError(t, err)

		assert.Equal(t, "default", result.Name)
		assert.Equal(t, "/backup", result.Repository)
		assert.Equal(t, []string{"--repo '/backup'", "--verbose 1"}, result.Flags)
		assert.Empty(t, result.Suggestions)
	})

	t.Run("params override the configured profile name", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{
			"default": {},
			"remote":  {"quiet": true},
		})

		result, err := NewResolveProfile(cfg, testLogger()).Run(context.Background(),
			ResolveProfileParams{Name: "remote"})
		require.NoError(t, err)

		assert.Equal(t, "remote", result.Name)
		assert.True(t, result.Quiet)
	})

	t.Run("undefined profile resolves empty with suggestions", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{
			"remote-backup": {"repository": "/backup"},
		})

		result, err := NewResolveProfile(cfg, testLogger()).Run(context.Background(),
			ResolveProfileParams{Name: "remote"})
		require.NoError(t, err)

		assert.Empty(t, result.Flags)
		assert.Equal(t, []string{"remote-backup"}, result.Suggestions)
	})

	t.Run("propagates inheritance cycles", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{
			"default": {"inherit": "default"},
		})

		_, err := NewResolveProfile(cfg, testLogger()).Run(context.Background(), ResolveProfileParams{})
		require.Error(t, err)

		var cycle *domain.InheritanceCycleError
		assert.ErrorAs(t, err, &cycle)
	})

	t.Run("strict inheritance is honored", func(t *testing.T) {
		cfg := runtimeConfig(config.RawConfig{
			"default": {"inherit": "ghost"},
		})
		cfg.StrictInheritance = true

		_, err := NewResolveProfile(cfg, testLogger()).Run(context.Background(), ResolveProfileParams{})
		require.Error(t, err)

		var missing *domain.MissingAncestorError
		assert.ErrorAs(t, err, &missing)
	})
}
