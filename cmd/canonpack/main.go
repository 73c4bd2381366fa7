// Package main is the entry point for the canonpack CLI.
package main

import (
	"os"

	"github.com/canonpack/canonpack/cmd/canonpack/commands"
)

func main() {
	os.Exit(commands.Execute())
}
