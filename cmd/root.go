package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/dispatch"
	"github.com/halvard/paperchase/internal/engine"
	"github.com/halvard/paperchase/internal/hints"
	"github.com/halvard/paperchase/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "paperchase",
	Short: "Operator console for the letter game",
	Long: "Paperchase — progression ledger and trigger dispatch for a real-world\n" +
		"narrative game of letters, messages, and puzzle screens.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PAPERCHASE_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to step catalog document (overrides PAPERCHASE_CATALOG env var)")
	rootCmd.PersistentFlags().String("track", "", "Game track: test or live (overrides PAPERCHASE_TRACK env var, default test)")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(retryCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(deliveredCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PAPERCHASE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCatalogPath returns the catalog document path from --catalog or
// PAPERCHASE_CATALOG.
func resolveCatalogPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return p, nil
	}
	if p := os.Getenv("PAPERCHASE_CATALOG"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no catalog: pass --catalog or set PAPERCHASE_CATALOG")
}

// resolveTrack returns the track from --track or PAPERCHASE_TRACK,
// defaulting to test so destructive mistakes stay off the live game.
func resolveTrack(cmd *cobra.Command) (store.Track, error) {
	if t, _ := cmd.Flags().GetString("track"); t != "" {
		return store.ParseTrack(t)
	}
	if t := os.Getenv("PAPERCHASE_TRACK"); t != "" {
		return store.ParseTrack(t)
	}
	return store.TrackTest, nil
}

// app bundles the opened store with the services every command needs.
type app struct {
	store *store.Store
	cat   *catalog.Catalog
	eng   *engine.Engine
	disp  *dispatch.Dispatcher
	hints *hints.Service
	track store.Track
}

// openApp loads the catalog, opens the store, and wires the services.
func openApp(cmd *cobra.Command) (*app, error) {
	track, err := resolveTrack(cmd)
	if err != nil {
		return nil, err
	}
	catPath, err := resolveCatalogPath(cmd)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(catPath)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	msgr := &dispatch.ConsoleMessenger{W: cmd.OutOrStdout()}
	disp := dispatch.New(cat, st.RunRepo(), st.MessageRepo(), msgr)
	return &app{
		store: st,
		cat:   cat,
		eng:   engine.New(cat, st, disp),
		disp:  disp,
		hints: hints.New(cat, st.RunRepo(), st.HintRepo()),
		track: track,
	}, nil
}

func (a *app) Close() {
	a.store.Close()
}
