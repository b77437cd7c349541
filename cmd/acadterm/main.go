package main

import (
	"os"

	"github.com/acadterm/acadterm/cmd/acadterm/commands"
)

// main is the entry point for the acadterm CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
