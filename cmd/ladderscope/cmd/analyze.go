package cmd

import (
	"time"

	"github.com/ladderscope/core/internal/ladder"
	"github.com/ladderscope/core/internal/models"
	"github.com/ladderscope/core/internal/parser"
	"github.com/spf13/cobra"
)

var (
	portScope    string
	outputFormat string
)

type analysisOutput struct {
	models.TableReport `yaml:",inline"`
	Skipped            []parser.RowError `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <table>",
	Short: "Run every structural analysis over an element table",
	Long: `Group the table into rungs and report junctions, maximal chains,
self-holding coils, parallel branches and block port wiring for each.

Examples:
  ladderscope analyze program.json
  ladderscope analyze --scope body --format yaml program.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&portScope, "scope", "s", "",
		"block port scope: rung or body (default from config)")
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "json",
		"output format: json or yaml")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	opts, err := analysisOptions(portScope)
	if err != nil {
		return err
	}

	table, err := loadTable(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	report := ladder.AnalyzeTable(table.Elements, opts)
	report.Stats = parser.BuildStats(table)
	logger.Debug("analysed element table", "rungs", len(report.Rungs), "duration", time.Since(start))

	return encode(cmd.OutOrStdout(), outputFormat, analysisOutput{
		TableReport: report,
		Skipped:     table.Skipped,
	})
}

// analysisOptions applies a --scope override to the configured options.
func analysisOptions(scope string) (ladder.Options, error) {
	opts := cfg.Options()
	if scope != "" {
		parsed, err := ladder.ParsePortScope(scope)
		if err != nil {
			return opts, err
		}
		opts.PortScope = parsed
	}
	return opts, nil
}
