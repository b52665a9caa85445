package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taseebali/langauge-widget-desktop/internal/vocab"
)

var importCmd = &cobra.Command{
	Use:   "import <words.csv>",
	Short: "Import words from a CSV file into the vocabulary directory",
	Long: "Import converts a CSV file (german, english and optional article,\n" +
		"pronunciation, category, difficulty columns) into a vocabulary\n" +
		"document the scheduler picks up on the next run.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.VocabDir, 0o755); err != nil {
			return fmt.Errorf("create vocabulary dir: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			stem := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			out = filepath.Join(cfg.VocabDir, "imported_"+stem+".json")
		}

		n, err := vocab.ImportCSV(args[0], out)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d words to %s\n", n, out)
		return nil
	},
}

func init() {
	importCmd.Flags().String("out", "", "Destination document path (default: <vocab dir>/imported_<name>.json)")
}
