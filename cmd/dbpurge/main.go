package main

import (
	"errors"
	"os"

	"github.com/caretaker-cli/caretaker/internal/cli/dbpurge"
	"github.com/caretaker-cli/caretaker/internal/config"
)

// These variables are set at build time via -ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	dbpurge.Version = version
	dbpurge.Commit = commit
	dbpurge.BuildDate = date

	err := dbpurge.Execute()
	switch {
	case err == nil:
	case errors.Is(err, dbpurge.ErrManifestMissing):
		os.Exit(config.ExitPreconditionFailed)
	default:
		os.Exit(config.ExitGeneralError)
	}
}
