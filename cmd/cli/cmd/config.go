// Package cmd - configuration commands
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"solar-quote/internal/config"
)

// DefaultConfigFile is where "config init" writes when no path is given
const DefaultConfigFile = "solar-quote.json"

var forceInit bool

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// configInitCmd writes the effective configuration to a JSON file
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the effective configuration to a JSON file",
	Long: `Write the effective configuration (defaults, --config file, .env and
SOLARQUOTE_* overrides applied) to a JSON file that can be edited and passed
back with --config.

Examples:
  solar-quote config init
  solar-quote config init ~/.config/solar-quote.json --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := DefaultConfigFile
		if len(args) == 1 {
			path = args[0]
		}
		if strings.EqualFold(filepath.Ext(path), ".hcl") {
			return fmt.Errorf("config init writes JSON; use a .json path instead of %s", path)
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.Get().Save(path); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
		return nil
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
