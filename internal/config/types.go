package config

// RuntimeConfig represents the complete runtime configuration.
// This is injected into use cases and contains all resolved settings.
type RuntimeConfig struct {
	// Core settings
	ConfigFile string

	// Context settings
	ProfileName string

	// Execution settings
	Debug          bool
	NonInteractive bool
	DryRun         bool

	// StrictInheritance makes a missing ancestor a hard error instead of
	// treating it as an empty contribution
	StrictInheritance bool

	// ResticBinary is the backup tool executable to invoke
	ResticBinary string

	// Resolved configuration document
	Store *Store
}
