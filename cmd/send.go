package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halvard/paperchase/internal/catalog"
)

var sendCmd = &cobra.Command{
	Use:   "send <step-id>",
	Short: "Manually send a message step",
	Long: `Send the message step now. A no-op if the step already has a
non-failed attempt — repeating the command never double-sends.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if ms, ok := a.cat.Step(args[0]).(*catalog.MessageStep); ok {
			if trig, ok := ms.Trigger.(catalog.ManualTrigger); ok && trig.RequiresLocation {
				fmt.Fprintln(cmd.OutOrStdout(), "note: this step expects the player to be in place before sending")
			}
		}

		attempt, err := a.disp.SendStep(cmd.Context(), a.track, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "step %s: attempt %s is %s\n", args[0], attempt.ID, attempt.Status)
		return nil
	},
}

var retryCmd = &cobra.Command{
	Use:   "retry <step-id>",
	Short: "Retry a failed message step with a fresh attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		attempt, err := a.disp.RetryStep(cmd.Context(), a.track, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "step %s: attempt %s is %s\n", args[0], attempt.ID, attempt.Status)
		return nil
	},
}

var deliveredCmd = &cobra.Command{
	Use:   "delivered <step-id>",
	Short: "Record a delivery receipt for a sent message step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.disp.MarkDelivered(cmd.Context(), a.track, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "step %s: marked delivered\n", args[0])
		return nil
	},
}
