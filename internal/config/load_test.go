package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "prestic.toml", `
[default]
repository = "/backup"
verbose = 1
option = ["a=b", "b=c"]

[remote]
inherit = "default"
no-cache = true
`)

	store, err := Load(path)
	require.NoError(t, err)

	section, ok := store.GetSection("default")
	require.True(t, ok)
	assert.Equal(t, "/backup", section["repository"])
	assert.Equal(t, int64(1), section["verbose"])
	assert.Equal(t, []any{"a=b", "b=c"}, section["option"])

	remote, ok := store.GetSection("remote")
	require.True(t, ok)
	assert.Equal(t, "default", remote["inherit"])
	assert.Equal(t, true, remote["no-cache"])
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "prestic.yaml", `
default:
  repository: /backup
  quiet: true
  limit-upload: -10
`)

	store, err := Load(path)
	require.NoError(t, err)

	section, ok := store.GetSection("default")
	require.True(t, ok)
	assert.Equal(t, "/backup", section["repository"])
	assert.Equal(t, true, section["quiet"])
	assert.Equal(t, -10, section["limit-upload"])
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TEST_PRESTIC_REPO", "/from-env")

	path := writeConfig(t, "prestic.toml", `
[default]
repository = "${TEST_PRESTIC_REPO}"
option = ["host=${TEST_PRESTIC_REPO}"]
`)

	store, err := Load(path)
	require.NoError(t, err)

	section, _ := store.GetSection("default")
	assert.Equal(t, "/from-env", section["repository"])
	assert.Equal(t, []any{"host=/from-env"}, section["option"])
}

func TestLoadSkipsNonTableKeys(t *testing.T) {
	path := writeConfig(t, "prestic.yaml", `
stray: value
default:
  quiet: true
`)

	store, err := Load(path)
	require.NoError(t, err)

	assert.False(t, store.HasSection("stray"))
	assert.True(t, store.HasSection("default"))
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeConfig(t, "prestic.ini", "[default]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported configuration format")
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("TEST_PRESTIC_ENVFILE=/dotenv\n"), 0644))

	path := filepath.Join(dir, "prestic.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[default]
repository = "${TEST_PRESTIC_ENVFILE}"
`), 0644))

	t.Cleanup(func() { os.Unsetenv("TEST_PRESTIC_ENVFILE") })

	store, err := Load(path)
	require.NoError(t, err)

	section, _ := store.GetSection("default")
	assert.Equal(t, "/dotenv", section["repository"])
}
