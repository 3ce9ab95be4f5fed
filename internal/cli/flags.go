package cli

import (
	"github.com/spf13/cobra"

	"github.com/prestic-org/prestic-cli/internal/cli/render"
	"github.com/prestic-org/prestic-cli/internal/usecase"
)

// NewFlagsCmd creates the flags command
func NewFlagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flags [profile]",
		Short: "Show the restic flags generated for a profile",
		Long: `Resolve a profile, following its inheritance chain, and show the
global command-line flags it generates.`,
		Example: `  # Flags for the default profile
  prestic flags

  # Flags for a named profile
  prestic flags remote-backup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ResolveProfileParams{}
			if len(args) > 0 {
				params.Name = args[0]
			}

			result, err := app.ResolveProfile.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewFlagsRenderer(cmd.OutOrStdout(), !app.Config.NonInteractive)
			return renderer.Render(result)
		},
	}

	return cmd
}
