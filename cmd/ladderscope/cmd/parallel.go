package cmd

import (
	"fmt"

	"github.com/ladderscope/core/internal/ladder"
	"github.com/spf13/cobra"
)

var parallelCmd = &cobra.Command{
	Use:   "parallel <table> <operand>",
	Short: "List contacts wired in parallel with a contact",
	Long: `List the operands of the non-negated contacts on branches that connect
the same two junctions as any contact on <operand>.

Examples:
  ladderscope parallel program.json Start`,
	Args: cobra.ExactArgs(2),
	RunE: runParallel,
}

func init() {
	rootCmd.AddCommand(parallelCmd)
}

func runParallel(cmd *cobra.Command, args []string) error {
	table, err := loadTable(args[0])
	if err != nil {
		return err
	}
	operand := args[1]

	out := cmd.OutOrStdout()
	seen := make(map[string]bool)
	for _, r := range ladder.GroupByRung(table.Elements) {
		for _, op := range ladder.ContactsInParallelWith(r.Elements, operand) {
			if seen[op] {
				continue
			}
			seen[op] = true
			fmt.Fprintln(out, op)
		}
	}

	if len(seen) == 0 {
		logger.Info("no parallel contacts", "operand", operand)
	}
	return nil
}
