package cli

import (
	"github.com/spf13/cobra"

	"github.com/prestic-org/prestic-cli/internal/cli/render"
)

// NewProfilesCmd creates the profiles command
func NewProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"ls"},
		Short:   "List configured profiles",
		Long: `List every profile defined in the configuration, with its parent
profile and resolved repository.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListProfiles.Run(cmd.Context(), struct{}{})
			if err != nil {
				return err
			}

			renderer := render.NewProfilesRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
