package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prestic-org/prestic-cli/internal/app"
	"github.com/prestic-org/prestic-cli/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prestic",
		Short: "Profile-driven launcher for the restic backup tool",
		Long: `Prestic resolves named configuration profiles, with single-parent
inheritance, into restic command-line invocations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Set up viper
			v := config.SetupViper(cmd)

			// Bind global flags that have been set
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file (defaults to prestic.toml found upwards)")
	rootCmd.PersistentFlags().StringP("name", "n", "", "Profile name (defaults to 'default')")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Show the restic command without executing it")
	rootCmd.PersistentFlags().Bool("strict-inheritance", false, "Fail when a profile inherits from an undefined parent")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	flagsCmd := NewFlagsCmd()
	flagsCmd.GroupID = "main"
	rootCmd.AddCommand(flagsCmd)

	runCmd := NewRunCmd()
	runCmd.GroupID = "main"
	rootCmd.AddCommand(runCmd)

	profilesCmd := NewProfilesCmd()
	profilesCmd.GroupID = "management"
	rootCmd.AddCommand(profilesCmd)

	scheduleCmd := NewScheduleCmd()
	scheduleCmd.GroupID = "management"
	rootCmd.AddCommand(scheduleCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("config"); f != nil && f.Changed {
		v.Set("config", f.Value.String())
	}
	if f := cmd.Flag("name"); f != nil && f.Changed {
		v.Set("name", f.Value.String())
	}
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("dry-run"); f != nil && f.Changed {
		v.Set("dry_run", f.Value.String())
	}
	if f := cmd.Flag("strict-inheritance"); f != nil && f.Changed {
		v.Set("strict_inheritance", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
