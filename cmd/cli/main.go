// Package main is the entry point for the solar-quote CLI.
package main

import (
	"os"

	"solar-quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
