package cli

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/prestic-org/prestic-cli/internal/cli/render"
	"github.com/prestic-org/prestic-cli/internal/usecase"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "run [command] [args...]",
		Short: "Run a restic command with a profile's flags",
		Long: `Resolve a profile and invoke restic with the generated global flags.
The first argument is the restic command (backup, snapshots, check, ...);
anything after it is passed through unchanged.`,
		Example: `  # Show snapshots with the default profile
  prestic run snapshots

  # Back up a directory with a named profile
  prestic run backup /home --name remote-backup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name := profileName
			if name == "" {
				name = app.Config.ProfileName
			}

			// Prompt when the profile is not configured and several others are
			if !app.Config.NonInteractive && !app.Config.Store.HasSection(name) {
				if names := app.Config.Store.SectionNames(); len(names) > 0 {
					prompt := promptui.Select{
						Label: "Select a profile",
						Items: names,
					}
					if _, selected, err := prompt.Run(); err == nil {
						name = selected
					}
				}
			}

			params := usecase.RunBackupParams{ProfileName: name}
			if len(args) > 0 {
				params.Command = args[0]
				params.ExtraArgs = args[1:]
			}

			var spin *spinner.Spinner
			if !app.Config.Debug && !app.Config.DryRun && !app.Config.NonInteractive {
				spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
					spinner.WithWriter(cmd.ErrOrStderr()))
				spin.Suffix = " running restic..."
				spin.Start()
			}

			result, err := app.RunBackup.Run(cmd.Context(), params)
			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				return err
			}

			renderer := render.NewRunRenderer(cmd.OutOrStdout())
			if err := renderer.Render(result); err != nil {
				return err
			}
			if result.Run != nil && result.Run.Error != nil {
				return result.Run.Error
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "Profile to run with (overrides --name)")

	return cmd
}
