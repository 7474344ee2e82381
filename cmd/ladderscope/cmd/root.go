package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ladderscope/core/internal/config"
	"github.com/ladderscope/core/internal/parser"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ladderscope",
	Short: "Structural analysis of ladder diagram element tables",
	Long: `Analyse the connectivity of ladder logic rungs exported as element tables:
wire junctions, series chains, parallel branches, self-holding coils and
function block port wiring.

Examples:
  ladderscope analyze program.json                  # Full report as JSON
  ladderscope analyze program.yaml --format yaml    # Full report as YAML
  ladderscope chains program.json --coils           # Series chains per rung
  ladderscope parallel program.json Start           # Contacts parallel to Start`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Log.Level = "debug"
			loaded.Log.Format = "text"
		}
		cfg = loaded
		logger = cfg.NewLogger()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./ladderscope.yaml)")
}

// loadTable reads an element table, choosing YAML or JSON by extension.
// Skipped rows are logged, not fatal.
func loadTable(path string) (*parser.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	var table *parser.Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		table, err = parser.ParseTableYAML(data)
	default:
		table, err = parser.ParseTable(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, row := range table.Skipped {
		logger.Warn("skipped element row", "file", path, "row", row.Index, "kind", row.Kind, "reason", row.Reason)
	}
	logger.Debug("loaded element table", "file", path, "elements", len(table.Elements), "skipped", len(table.Skipped))

	return table, nil
}
