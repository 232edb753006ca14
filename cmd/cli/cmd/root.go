// Package cmd provides the CLI commands for solar-quote.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"solar-quote/adapters/storage"
	"solar-quote/core/quote"
	"solar-quote/core/types"
	"solar-quote/core/ui"
	"solar-quote/internal/config"
	"solar-quote/internal/errors"
	"solar-quote/internal/logging"
)

// Version is the CLI version
const Version = "0.1.0"

var (
	cfgFile  string
	dataFile string
	verbose  bool
	noColor  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "solar-quote",
	Short: "Estimate solar panel installation cost, savings and payback",
	Long: `solar-quote is a solar energy quotation calculator.

It estimates the installation cost of a solar panel system from your monthly
consumption, the monthly savings on your electricity bill and the time the
installation takes to pay for itself. Results are kept in a local JSON file
between runs.

Run without a command to open the interactive menu.

Examples:
  solar-quote
  solar-quote install 320
  solar-quote savings 320 0.85
  solar-quote payback
  solar-quote chart --years 15`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runMenu,
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil && errors.TypeOf(err) == "" {
		// Domain errors were already reported by the command.
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	logging.Sync()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, JSON or HCL (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", `quotation record file (default "dados.json"; "" keeps it in memory)`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(savingsCmd)
	rootCmd.AddCommand(paybackCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(tariffCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("data") {
		cfg.Quote.DataFile = dataFile
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// app bundles what a command needs to run
type app struct {
	cfg      *config.Config
	service  *quote.Service
	w        *ui.Writer
	currency types.Currency
	logger   *zap.Logger
}

func newApp(cmd *cobra.Command) *app {
	cfg := config.Get()
	logger, _ := logging.NewSession()

	store := storage.StoreFactory(cfg.Quote.DataFile)
	logger.Debug("quotation session started",
		zap.String("backend", string(store.Backend())),
		zap.String("data_file", cfg.Quote.DataFile))

	w := ui.NewWriter(cmd.OutOrStdout(), noColor)
	if verbose {
		w.SetVerbosity(2)
	}

	return &app{
		cfg:      cfg,
		service:  quote.NewService(commandContext(cmd), store, quote.RatesFromConfig(cfg.Quote), logger),
		w:        w,
		currency: types.Currency(cfg.Quote.Currency),
		logger:   logger,
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "solar-quote version %s\n", Version)
	},
}
