package cmd

import (
	"fmt"

	"github.com/ladderscope/core/internal/ladder"
	"github.com/spf13/cobra"
)

var selfholdCmd = &cobra.Command{
	Use:   "selfhold <table>",
	Short: "List coils that hold themselves through their own contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelfhold,
}

func init() {
	rootCmd.AddCommand(selfholdCmd)
}

func runSelfhold(cmd *cobra.Command, args []string) error {
	table, err := loadTable(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	found := 0
	for _, r := range ladder.GroupByRung(table.Elements) {
		for _, idx := range ladder.SelfHoldingCoils(r.Elements) {
			fmt.Fprintf(out, "%s: %s\n", rungTitle(r), r.Elements[idx].Label())
			found++
		}
	}

	if verbose {
		fmt.Fprintf(out, "%d self-holding coil(s)\n", found)
	}
	return nil
}
