package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prestic-org/prestic-cli/internal/usecase"
)

// NewScheduleCmd creates the schedule command group
func NewScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule helpers",
	}

	cmd.AddCommand(newScheduleCheckCmd())

	return cmd
}

func newScheduleCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <expression>",
		Short: "Validate a systemd calendar expression",
		Example: `  prestic schedule check "daily"
  prestic schedule check "Mon..Fri 03:00"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ValidateSchedule.Run(cmd.Context(),
				usecase.ValidateScheduleParams{Expression: args[0]})
			if err != nil {
				return err
			}

			if !result.Valid {
				return fmt.Errorf("schedule rejected: %s", result.Reason)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ schedule %q is valid\n", result.Expression)
			return nil
		},
	}
}
