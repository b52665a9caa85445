package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taseebali/langauge-widget-desktop/internal/app"
	"github.com/taseebali/langauge-widget-desktop/internal/progress"
	"github.com/taseebali/langauge-widget-desktop/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildScheduler(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		snap := s.ProgressSnapshot()

		fmt.Println(ui.StatRow("Today", fmt.Sprintf("%d/%d words", s.DailyProgress(), s.DailyGoal())))
		fmt.Println(ui.GoalLine(s.DailyProgress(), s.DailyGoal()))
		fmt.Println(ui.StatRow("Current streak", fmt.Sprintf("%d days", snap.CurrentStreak)))
		fmt.Println(ui.StatRow("Longest streak", fmt.Sprintf("%d days", snap.LongestStreak)))
		fmt.Println(ui.StatRow("Total exposures", snap.TotalWordsLearned))
		fmt.Println(ui.StatRow("Study days", snap.TotalStudyDays))

		seen, known, difficult := s.HistoryCounts()
		fmt.Println(ui.StatRow("Words seen", seen))
		fmt.Println(ui.StatRow("Marked known", known))
		fmt.Println(ui.StatRow("Marked difficult", difficult))

		printAchievements(snap)

		if n, _ := cmd.Flags().GetInt("events"); n > 0 {
			if err := printRecentEvents(cmd, s, n); err != nil {
				return err
			}
		}
		return nil
	},
}

func printAchievements(snap progress.State) {
	if len(snap.Achievements) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(ui.StatRow("Achievements", len(snap.Achievements)))
	for _, id := range snap.Achievements {
		if a, ok := progress.ParseAchievement(id); ok {
			fmt.Println("  " + ui.AchievementBanner(a))
		}
	}
}

func printRecentEvents(cmd *cobra.Command, s *app.Scheduler, n int) error {
	events, err := s.RecentEvents(cmd.Context(), n)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	if len(events) == 0 {
		fmt.Println()
		fmt.Println(ui.WarningLine("no journal events recorded yet"))
		return nil
	}

	fmt.Println()
	for _, e := range events {
		fmt.Printf("%s  word %-5d %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.WordID, e.Action)
	}
	return nil
}

func init() {
	statsCmd.Flags().Int("events", 0, "Also show the N most recent journal events")
}
