package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wortwidget",
	Short: "German vocabulary trainer for your terminal",
	Long: "Wortwidget shows you a new German word on a timer, weighted toward\n" +
		"words you haven't seen recently, and tracks streaks and achievements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoop(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: <data dir>/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "Data directory (overrides WORTWIDGET_DATA env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging installs a text slog handler on stderr, honoring
// --verbose.
func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
