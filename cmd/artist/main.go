package main

import (
	"os"

	"github.com/msuss/atelier/cmd/artist/commands"
	"github.com/msuss/atelier/internal/buildconfig"
)

func main() {
	commands.SetVersionInfo(buildconfig.Version(), buildconfig.Commit(), buildconfig.Date())

	// Errors are already printed by the printer package
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
