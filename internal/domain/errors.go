package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNoConfiguration is returned when no configuration file can be located
	ErrNoConfiguration = errors.New("no configuration file found")

	// ErrNoProfiles is returned when the configuration defines no profiles at all
	ErrNoProfiles = errors.New("no profiles defined")
)

// InheritanceCycleError is returned when a profile transitively inherits from
// itself. The chain lists the profile names in the order they were visited,
// ending with the repeated name.
type InheritanceCycleError struct {
	Chain []string
}

func (e *InheritanceCycleError) Error() string {
	return fmt.Sprintf("inheritance cycle detected: %s", strings.Join(e.Chain, " -> "))
}

// MissingAncestorError is returned in strict mode when a profile names a
// parent that has no section in the configuration.
type MissingAncestorError struct {
	Profile  string
	Ancestor string
}

func (e *MissingAncestorError) Error() string {
	return fmt.Sprintf("profile %q inherits from %q which is not defined", e.Profile, e.Ancestor)
}
