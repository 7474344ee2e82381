package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ladderscope/core/internal/ladder"
	"github.com/ladderscope/core/internal/models"
	"github.com/spf13/cobra"
)

var portsScope string

var portsCmd = &cobra.Command{
	Use:   "ports <table>",
	Short: "Show what is wired to each function block parameter",
	Long: `Resolve every function block port to the labels of the elements
wired to it. With --scope body, neighbours in other rungs of the same
section are matched too.

Examples:
  ladderscope ports program.json
  ladderscope ports --scope body program.json`,
	Args: cobra.ExactArgs(1),
	RunE: runPorts,
}

func init() {
	rootCmd.AddCommand(portsCmd)

	portsCmd.Flags().StringVarP(&portsScope, "scope", "s", "",
		"block port scope: rung or body (default from config)")
}

func runPorts(cmd *cobra.Command, args []string) error {
	opts, err := analysisOptions(portsScope)
	if err != nil {
		return err
	}

	table, err := loadTable(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.PortScope == ladder.ScopeBody {
		for _, b := range ladder.GroupByBody(table.Elements) {
			blocks := ladder.ResolveBlockPorts(b.Elements, ladder.ScopeBody)
			printBlocks(out, fmt.Sprintf("%s/%s", b.Scope, b.Section), b.Elements, blocks)
		}
		return nil
	}

	for _, r := range ladder.GroupByRung(table.Elements) {
		blocks := ladder.ResolveBlockPorts(r.Elements, ladder.ScopeRung)
		printBlocks(out, rungTitle(r), r.Elements, blocks)
	}
	return nil
}

func printBlocks(out io.Writer, title string, elems []models.Element, blocks []models.BlockPorts) {
	if len(blocks) == 0 {
		return
	}

	fmt.Fprintf(out, "%s:\n", title)
	for _, b := range blocks {
		fmt.Fprintf(out, "  %s (rung %d):\n", b.Type, elems[b.Index].Rung)

		names := make([]string, 0, len(b.Ports))
		for name := range b.Ports {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "    %s = %s\n", name, strings.Join(b.Ports[name], ", "))
		}
	}
}
