package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taseebali/langauge-widget-desktop/internal/ui"
	"github.com/taseebali/langauge-widget-desktop/internal/vocab"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories present in the vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		catalog := vocab.NewCatalog(nil)
		if err := catalog.LoadDir(cfg.VocabDir); err != nil {
			return fmt.Errorf("load vocabulary: %w", err)
		}

		if catalog.Len() == 0 {
			fmt.Println(ui.WarningLine("no vocabulary loaded from " + cfg.VocabDir))
			return nil
		}

		enabled := make(map[string]bool, len(cfg.EnabledCategories))
		for _, c := range cfg.EnabledCategories {
			enabled[c] = true
		}
		all := enabled["all"] || len(cfg.EnabledCategories) == 0

		for _, cat := range catalog.Categories() {
			marker := " "
			if all || enabled[cat] {
				marker = "*"
			}
			fmt.Printf("%s %-16s %d words\n", marker, cat, len(catalog.ByCategory(cat)))
		}
		return nil
	},
}
