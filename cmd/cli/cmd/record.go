// Package cmd - record and tariff inspection commands
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"solar-quote/core/tariff"
)

// recordCmd prints the persisted quotation record
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Print the saved quotation record as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		data, err := json.MarshalIndent(a.service.Record(), "", "    ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

// tariffCmd prints the base fee table
var tariffCmd = &cobra.Command{
	Use:   "tariff",
	Short: "Print the base fee table subtracted from savings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		a.w.Header("Base fee by monthly consumption")

		table := a.w.NewTable("Consumption", "Base fee")
		lower := "0"
		for _, tier := range tariff.Tiers() {
			bracket := fmt.Sprintf("up to %s kWh", tier.UpTo)
			if tier.Unlimited() {
				bracket = fmt.Sprintf("above %s kWh", lower)
			}
			table.AddRow(bracket, a.currency.Format(tier.Fee))
			lower = tier.UpTo.String()
		}
		table.Render()
		return nil
	},
}
