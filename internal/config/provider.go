package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates the RuntimeConfig consumed by the use cases.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	configFile := v.GetString("config")
	if configFile == "" {
		var err error
		configFile, err = FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to find configuration file: %w", err)
		}
	}

	cfg := &RuntimeConfig{
		ConfigFile:        configFile,
		ProfileName:       v.GetString("name"),
		Debug:             v.GetBool("debug"),
		NonInteractive:    v.GetBool("non_interactive"),
		DryRun:            v.GetBool("dry_run"),
		StrictInheritance: v.GetBool("strict_inheritance"),
		ResticBinary:      v.GetString("restic_binary"),
	}

	store, err := Load(configFile)
	if err != nil {
		return nil, err
	}
	cfg.Store = store

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("PRESTIC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("name", "default")
	v.SetDefault("restic_binary", "restic")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}
