package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark a word as known or difficult",
}

var markKnownCmd = &cobra.Command{
	Use:   "known <word-id>",
	Short: "Mark a word as known (shown much less often)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mark(cmd, args[0], true)
	},
}

var markDifficultCmd = &cobra.Command{
	Use:   "difficult <word-id>",
	Short: "Mark a word as difficult (shown more often)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mark(cmd, args[0], false)
	},
}

func mark(cmd *cobra.Command, arg string, known bool) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid word id %q", arg)
	}

	s, err := buildScheduler(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if known {
		s.MarkKnown(ctx, id)
		fmt.Printf("word %d marked known\n", id)
	} else {
		s.MarkDifficult(ctx, id)
		fmt.Printf("word %d marked difficult\n", id)
	}
	return nil
}

func init() {
	markCmd.AddCommand(markKnownCmd)
	markCmd.AddCommand(markDifficultCmd)
}
