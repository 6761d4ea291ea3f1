// Package main is the entry point for the asset-cost CLI.
package main

import (
	"os"

	"asset-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
