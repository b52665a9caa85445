package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taseebali/langauge-widget-desktop/internal/progress"
)

var goalCmd = &cobra.Command{
	Use:   "goal [words-per-day]",
	Short: "Show or set the daily word goal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		prog := progress.Open(cfg.ProgressPath(), nil)

		if len(args) == 0 {
			fmt.Printf("Daily goal: %d words (%d today)\n", prog.Goal(), prog.ProgressToday())
			return nil
		}

		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("goal must be a positive number, got %q", args[0])
		}
		prog.SetGoal(n)
		fmt.Printf("Daily goal set to %d words.\n", n)
		return nil
	},
}
