// Package main is the entry point for the capcost CLI.
package main

import (
	"os"

	"capcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
