package config

import (
	"sort"

	"github.com/samber/lo"
)

// RawConfig is the decoded configuration document: a mapping from profile
// name to that profile's key/value section. It is owned by the loader and
// never mutated after decoding.
type RawConfig map[string]map[string]any

// Store provides read-only access to the profile sections of a RawConfig.
// Missing sections are valid and resolve to "no configuration", never an
// error.
type Store struct {
	raw RawConfig
}

// NewStore wraps a raw configuration document.
func NewStore(raw RawConfig) *Store {
	return &Store{raw: raw}
}

// GetSection returns the raw key/value section for the named profile. The
// second return value reports whether the section exists.
func (s *Store) GetSection(name string) (map[string]any, bool) {
	section, ok := s.raw[name]
	return section, ok
}

// HasSection reports whether the named profile has a section.
func (s *Store) HasSection(name string) bool {
	_, ok := s.raw[name]
	return ok
}

// SectionNames returns all profile names sorted alphabetically.
func (s *Store) SectionNames() []string {
	names := lo.Keys(s.raw)
	sort.Strings(names)
	return names
}
