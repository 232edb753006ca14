// Package cmd - interactive menu command
package cmd

import (
	"github.com/spf13/cobra"

	"solar-quote/adapters/browser"
	"solar-quote/core/ui"
)

// menuCmd runs the interactive menu; it is also the root command's default
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive quotation menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	a := newApp(cmd)

	menu := ui.NewMenu(a.w, cmd.InOrStdin(), a.service, ui.MenuOptions{
		Currency:        a.currency,
		ProjectionYears: a.cfg.Quote.ProjectionYears,
		ContactURL:      a.cfg.Contact.URL,
		Opener:          browser.NewBrowserOpener(),
	})
	return menu.Run(commandContext(cmd))
}
