package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/halvard/paperchase/internal/engine"
)

var advanceCmd = &cobra.Command{
	Use:   "advance <expected-index>",
	Short: "Commit completion of the current step",
	Long: `Commit completion of the step at the given index.

The index is an optimistic-concurrency token: run "status" first and pass
the index it shows as current. If the ledger moved in the meantime the
advance fails without writing anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expected, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("expected-index must be a number: %w", err)
		}

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
		res, err := a.eng.Advance(ctx, a.track, run.ChapterID, expected)
		if err != nil {
			var stale *engine.StaleAdvanceError
			if errors.As(err, &stale) {
				return fmt.Errorf("%w — run \"status\" and retry with the current index", stale)
			}
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "advanced past step %d\n", expected)
		if res.DispatchErr != nil {
			fmt.Fprintf(out, "warning: the advance stands, but dispatch failed: %v\n", res.DispatchErr)
			fmt.Fprintln(out, "use \"retry <step-id>\" once the transport issue is resolved")
		}
		return nil
	},
}
