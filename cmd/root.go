package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bumpwise/bumpquiz/internal/config"
	"github.com/bumpwise/bumpquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "bumpquiz",
	Short: "Weekly pregnancy quizzes and flashcards in your terminal",
	Long:  "BumpQuiz generates a fresh quiz and flashcard deck for each week of pregnancy, personalized to your profile.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BUMPQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/bumpquiz/config.yaml)")
	rootCmd.PersistentFlags().String("user", "default", "Profile to play as")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag first,
// then the config file, then BUMPQUIZ_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path, store.EnsureDir(cfg.Store.Path)
	}
	return store.DefaultDBPath()
}
