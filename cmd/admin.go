package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Destructive operations. All of them are rejected by the engine on the
// live track before anything touches the ledger.

var activateCmd = &cobra.Command{
	Use:   "activate <chapter-id>",
	Short: "Open a new chapter run (test track only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		run, err := a.eng.ActivateChapter(cmd.Context(), a.track, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "chapter %s active on %s track, run %s\n", run.ChapterID, run.Track, run.ID)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every ledger row for the track (test track only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.eng.ResetTrack(cmd.Context(), a.track); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s track reset\n", a.track)
		return nil
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Force-complete the active chapter for QA (test track only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.eng.CompleteChapterForcefully(cmd.Context(), a.track); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "active chapter force-completed on %s track\n", a.track)
		return nil
	},
}
