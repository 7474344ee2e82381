package cmd

import (
	"fmt"
	"os"

	"github.com/ladderscope/core/internal/config"
	"github.com/spf13/cobra"
)

var forceWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the ladderscope configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return encode(cmd.OutOrStdout(), "yaml", cfg)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to path (default ./ladderscope.yaml).
An existing file is only replaced with --force.

Examples:
  ladderscope config init
  ladderscope config init --force configs/ladderscope.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&forceWrite, "force", false,
		"overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.FileName
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceWrite {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
