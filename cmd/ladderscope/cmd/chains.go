package cmd

import (
	"fmt"

	"github.com/ladderscope/core/internal/ladder"
	"github.com/spf13/cobra"
)

var includeCoils bool

var chainsCmd = &cobra.Command{
	Use:   "chains <table>",
	Short: "List the maximal series chains of every rung",
	Long: `List every maximal forward path of series-wired contacts per rung.
Negated contacts are shown with a leading slash.

Examples:
  ladderscope chains program.json
  ladderscope chains --coils program.json`,
	Args: cobra.ExactArgs(1),
	RunE: runChains,
}

func init() {
	rootCmd.AddCommand(chainsCmd)

	chainsCmd.Flags().BoolVar(&includeCoils, "coils", false,
		"include coils as chain members")
}

func runChains(cmd *cobra.Command, args []string) error {
	table, err := loadTable(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range ladder.GroupByRung(table.Elements) {
		chains, truncated := ladder.BuildChainsLimit(r.Elements, includeCoils, cfg.Analysis.MaxChains)
		chains = ladder.MaximalChains(chains)
		if len(chains) == 0 {
			continue
		}

		fmt.Fprintf(out, "%s:\n", rungTitle(r))
		for _, c := range chains {
			fmt.Fprintf(out, "  %s\n", formatChain(r.Elements, c))
		}
		if truncated {
			fmt.Fprintf(out, "  (truncated at %d chains)\n", cfg.Analysis.MaxChains)
		}
	}

	return nil
}
