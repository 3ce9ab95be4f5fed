package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prestic.toml")
	content := `
[default]
repository = "/backup"
verbose = 1

[remote]
inherit = "default"
no-cache = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFlagsCommand(t *testing.T) {
	configFile := writeTestConfig(t)

	t.Run("default profile", func(t *testing.T) {
		out, err := execute(t, "--config", configFile, "flags")
		require.NoError(t, err)

		assert.Contains(t, out, "Profile default")
		assert.Contains(t, out, "--repo '/backup'")
		assert.Contains(t, out, "--verbose 1")
	})

	t.Run("inheriting profile", func(t *testing.T) {
		out, err := execute(t, "--config", configFile, "flags", "remote")
		require.NoError(t, err)

		assert.Contains(t, out, "Profile remote")
		assert.Contains(t, out, "inherits from: default")
		assert.Contains(t, out, "--repo '/backup'")
		assert.Contains(t, out, "--no-cache")
	})
}

func TestProfilesCommand(t *testing.T) {
	configFile := writeTestConfig(t)

	out, err := execute(t, "--config", configFile, "profiles")
	require.NoError(t, err)

	assert.Contains(t, out, "default")
	assert.Contains(t, out, "remote")
	assert.Contains(t, out, "/backup")
}

func TestRunCommandDryRun(t *testing.T) {
	configFile := writeTestConfig(t)

	out, err := execute(t, "--config", configFile, "--dry-run", "--non-interactive",
		"run", "snapshots")
	require.NoError(t, err)

	// the command itself goes to the console; the summary to the command output
	assert.Contains(t, out, "✅ default snapshots completed")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "prestic")
}
