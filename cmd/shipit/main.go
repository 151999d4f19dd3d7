package main

import (
	"errors"
	"os"

	"github.com/caretaker-cli/caretaker/internal/cli/shipit"
	"github.com/caretaker-cli/caretaker/internal/config"
)

// These variables are set at build time via -ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	shipit.Version = version
	shipit.Commit = commit
	shipit.BuildDate = date

	err := shipit.Execute()
	switch {
	case err == nil:
	case errors.Is(err, shipit.ErrNotARepository):
		os.Exit(config.ExitPreconditionFailed)
	case errors.Is(err, shipit.ErrEmptyMessage):
		os.Exit(config.ExitInvalidInput)
	default:
		os.Exit(config.ExitGeneralError)
	}
}
