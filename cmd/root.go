package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tutorloop",
	Short: "Adaptive assessment dialogue in the terminal",
	Long:  "Tutorloop runs adaptive, turn-based assessment sessions: it asks questions, scores answers, and climbs or descends the Bloom ladder as the student performs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORLOOP_DB env var)")

	rootCmd.Flags().String("mode", "diagnostic", "Session mode: exam or diagnostic")
	rootCmd.Flags().String("topic", "", "Topic to assess (required)")

	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TUTORLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
