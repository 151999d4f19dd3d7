package shipit

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/caretaker-cli/caretaker/internal/config"
	"github.com/caretaker-cli/caretaker/internal/execx"
	"github.com/caretaker-cli/caretaker/internal/git"
	"github.com/caretaker-cli/caretaker/internal/ui"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "shipit",
	Short: "Stage, commit, and push the working copy in one guided pass",
	Long: `Shipit walks the full local git workflow: it previews pending
changes, stages everything, asks for a commit message, confirms, commits,
and pushes the current branch to its remote.

It must be run from inside a git working copy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose := mustGetBool(cmd, "verbose")
		noColor := mustGetBool(cmd, "no-color")
		noInteractive := mustGetBool(cmd, "no-interactive")

		if noColor {
			ui.DisableColor()
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			logger.Warn("falling back to default config", "err", err)
			cfg = config.Default()
		}

		runner := &execx.Local{Logger: logger}
		workflow := &Workflow{
			Git:         git.NewClient(runner),
			In:          os.Stdin,
			Out:         os.Stdout,
			Interactive: !noInteractive && ui.IsInteractive(),
			Remote:      cfg.Git.Remote,
		}

		return workflow.Run()
	},
}

func Execute() error {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		if ui.IsAbort(err) {
			return nil
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.Flags().Bool("verbose", false, "Trace every external command")
	rootCmd.Flags().Bool("no-color", false, "Disable colored output")
	rootCmd.Flags().Bool("no-interactive", false, "Disable terminal forms; read plain lines from stdin")
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: flag " + name + " not defined")
	}
	return value
}
