// Package cmd - estimator commands
package cmd

import (
	"github.com/spf13/cobra"
)

// installCmd quotes the installation cost
var installCmd = &cobra.Command{
	Use:   "install <monthly-kwh>",
	Short: "Estimate the installation cost from the monthly consumption",
	Long: `Estimate the installation cost of a solar panel system.

The monthly consumption in kWh is usually shown on the electricity bill as
"Total consumption". The result is saved to the quotation record.

Examples:
  solar-quote install 320
  solar-quote install 150,5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		q, err := a.service.Installation(commandContext(cmd), args[0])
		if err != nil {
			a.w.ReportError(err)
			return err
		}
		a.w.Installation(q, a.currency)
		return nil
	},
}

// savingsCmd quotes the monthly savings
var savingsCmd = &cobra.Command{
	Use:   "savings <monthly-kwh> <rate-per-kwh>",
	Short: "Estimate the net monthly savings",
	Long: `Estimate the monthly savings on the electricity bill.

Savings are the consumption times the energy rate, minus the base fee the
utility keeps billing (see "solar-quote tariff"). The net value is saved to
the quotation record.

Examples:
  solar-quote savings 320 0.85`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		q, err := a.service.Savings(commandContext(cmd), args[0], args[1])
		if err != nil {
			a.w.ReportError(err)
			return err
		}
		a.w.Savings(q, a.currency)
		return nil
	},
}

// paybackCmd shows the payback time
var paybackCmd = &cobra.Command{
	Use:   "payback",
	Short: "Compute the payback time from the recorded cost and savings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		p, err := a.service.Payback(commandContext(cmd))
		if err != nil {
			a.w.ReportError(err)
			return err
		}
		a.w.Payback(p)
		return nil
	},
}
