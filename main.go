// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Regform.
//
// Usage:
//
//	go run . [flags]
//	./regform [flags]
//
// This launches the interactive registration form. See --help for the
// prompt, validate, countries and theme subcommands.
package main

import (
	"os"

	log "github.com/charmbracelet/log"

	"github.com/toeirei/regform/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Errorf("regform: %v", err)
		os.Exit(1)
	}
}
