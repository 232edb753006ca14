// Package cmd - contact command
package cmd

import (
	"github.com/spf13/cobra"

	"solar-quote/adapters/browser"
)

// contactCmd opens the configured contact link
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Open the contact link in the default browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd)
		url := a.cfg.Contact.URL
		if url == "" {
			a.w.Warning("No contact link is configured (set contact.url or %s).", "SOLARQUOTE_CONTACT_URL")
			return nil
		}
		a.w.Info("Opening contact link %s ...", url)
		if err := browser.NewBrowserOpener().Open(url); err != nil {
			a.w.Error("Could not open the contact link: %v", err)
			return err
		}
		return nil
	},
}
