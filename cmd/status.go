package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the derived state of every step in the active chapter",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		run, err := a.eng.ActiveRun(ctx, a.track)
		if err != nil {
			return err
		}
		res, err := a.eng.StepStates(ctx, a.track, run.ChapterID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "track %s · chapter %s · started %s\n\n", a.track, run.ChapterID, run.StartedAt.Format("2006-01-02"))
		for i, v := range res.Views {
			line := fmt.Sprintf("%2d  %-10s  %s", i, v.State, v.Name)
			if v.ScheduledAt != nil {
				line += fmt.Sprintf("  (due %s)", v.ScheduledAt.Format("2006-01-02 15:04"))
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}
