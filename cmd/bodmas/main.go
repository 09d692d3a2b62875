// Package main provides the CLI for the BODMAS tutoring engine.
package main

import (
	"os"

	"github.com/stepwise-labs/bodmas/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
