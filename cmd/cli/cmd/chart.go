// Package cmd - comparison chart command
package cmd

import (
	"github.com/spf13/cobra"

	"solar-quote/core/projection"
	"solar-quote/core/ui"
	"solar-quote/internal/errors"
)

var chartYears int

// chartCmd draws the with/without solar comparison
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the with/without solar comparison chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		years := a.cfg.Quote.ProjectionYears
		if cmd.Flags().Changed("years") {
			if chartYears < 1 || chartYears > projection.MaxYears {
				err := errors.Newf(errors.TypeInvalidInput, "--years must be between 1 and %d, got %d",
					projection.MaxYears, chartYears).WithContext("field", "years")
				a.w.ReportError(err)
				return err
			}
			years = chartYears
		}
		p := a.service.Projection(commandContext(cmd), years)
		a.w.Chart(ui.DefaultChartConfig(a.currency), p)
		return nil
	},
}

func init() {
	chartCmd.Flags().IntVarP(&chartYears, "years", "y", 10, "projection horizon in years")
}
