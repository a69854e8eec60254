// Package main is the entry point for the solresol CLI.
package main

import (
	"os"

	"github.com/ferrolis/solresol/cmd/solresol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
