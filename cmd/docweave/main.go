// Package main provides the docweave command line tool.
package main

import (
	"os"

	"github.com/docweave/docweave/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
