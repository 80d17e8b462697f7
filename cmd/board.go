package cmd

import (
	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/halvard/paperchase/internal/screens/board"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Live step-state board (read-only TUI)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p := tea.NewProgram(board.New(a.eng, a.track))
		_, err = p.Run()
		return err
	},
}
