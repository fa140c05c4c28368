// Package main is the entry point for the land-audit CLI.
package main

import (
	"os"

	"land-audit/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
