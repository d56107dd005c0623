package main

import (
	"os"

	"github.com/idilsaglam/projects/internal/cli"
)

func main() {
	// No subcommand starts the interactive board; see `projects --help`.
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
