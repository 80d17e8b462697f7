package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hintCmd = &cobra.Command{
	Use:   "hint <step-id>",
	Short: "Reveal the next hint tier for a puzzle step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		reveal, err := a.hints.RevealNext(cmd.Context(), a.track, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if reveal.AllRevealed {
			fmt.Fprintf(out, "all hints already revealed; last was tier %d:\n", reveal.Tier)
		} else {
			fmt.Fprintf(out, "tier %d (question %d):\n", reveal.Tier, reveal.QuestionIndex+1)
		}
		fmt.Fprintln(out, reveal.Text)
		return nil
	},
}
