// Package main provides the CLI entry point for tabex.
package main

import (
	"os"

	"github.com/exdata/tabex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
