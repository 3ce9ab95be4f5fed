package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreGetSection(t *testing.T) {
	store := NewStore(RawConfig{
		"default": {"repository": "/backup"},
		"remote":  {"inherit": "default"},
	})

	t.Run("existing section", func(t *testing.T) {
		section, ok := store.GetSection("default")
		assert.True(t, ok)
		assert.Equal(t, "/backup", section["repository"])
	})

	t.Run("missing section is not an error", func(t *testing.T) {
		section, ok := store.GetSection("nope")
		assert.False(t, ok)
		assert.Nil(t, section)
	})

	t.Run("section names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"default", "remote"}, store.SectionNames())
	})

	t.Run("has section", func(t *testing.T) {
		assert.True(t, store.HasSection("remote"))
		assert.False(t, store.HasSection("nope"))
	})
}
