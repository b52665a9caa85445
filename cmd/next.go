package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taseebali/langauge-widget-desktop/internal/ui"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next word once",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildScheduler(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		peek, _ := cmd.Flags().GetBool("peek")
		if peek {
			w, ok := s.SelectNext()
			if !ok {
				return fmt.Errorf("no words available")
			}
			fmt.Println(ui.WordCard(w))
			return nil
		}

		w, unlocked, ok := s.ShowNext(cmd.Context())
		if !ok {
			return fmt.Errorf("no words available")
		}
		fmt.Println(ui.WordCard(w))
		for _, a := range unlocked {
			fmt.Println(ui.AchievementBanner(a))
		}
		fmt.Println(ui.GoalLine(s.DailyProgress(), s.DailyGoal()))
		return nil
	},
}

func init() {
	nextCmd.Flags().Bool("peek", false, "Select a word without recording an exposure")
}
