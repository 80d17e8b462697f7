package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <step-id>",
	Short: "Schedule a message step N mornings out",
	Long: `Record a scheduled attempt for the step, eligible at 04:30 local
time the given number of mornings from now. Nothing is sent until an
explicit "confirm" once the attempt is due.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mornings, _ := cmd.Flags().GetInt("mornings")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		attempt, err := a.disp.ScheduleStep(cmd.Context(), a.track, args[0], mornings)
		if err != nil {
			return err
		}
		if attempt.ScheduledAt != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "step %s: scheduled for %s\n", args[0], attempt.ScheduledAt.Format("Mon 02 Jan 15:04"))
		}
		return nil
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm <step-id>",
	Short: "Send a due scheduled message step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		attempt, err := a.disp.ConfirmScheduled(cmd.Context(), a.track, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "step %s: attempt %s is %s\n", args[0], attempt.ID, attempt.Status)
		return nil
	},
}

func init() {
	scheduleCmd.Flags().Int("mornings", 1, "How many mornings ahead the message becomes due")
}
