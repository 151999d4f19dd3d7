package dbpurge

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/caretaker-cli/caretaker/internal/config"
	"github.com/caretaker-cli/caretaker/internal/execx"
	"github.com/caretaker-cli/caretaker/internal/fs"
	"github.com/caretaker-cli/caretaker/internal/ui"
	"github.com/caretaker-cli/caretaker/internal/wrangler"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ErrManifestMissing marks the fatal precondition failure: the tool was
// started outside the project root.
var ErrManifestMissing = errors.New("wrangler manifest not found")

var rootCmd = &cobra.Command{
	Use:   "dbpurge",
	Short: "Interactively truncate, reset, or inspect the project's D1 tables",
	Long: `Dbpurge presents a menu of destructive maintenance operations for the
project's Cloudflare D1 database and runs them through the wrangler CLI.

It operates on the local development database unless --remote is given, and
must be run from the project root (the directory holding the wrangler
manifest).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		remote := mustGetBool(cmd, "remote")
		verbose := mustGetBool(cmd, "verbose")
		noColor := mustGetBool(cmd, "no-color")
		database := mustGetString(cmd, "database")
		initConfig := mustGetBool(cmd, "init")

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

		if initConfig {
			if err := config.Save(fs.Default, cwd, config.Default()); err != nil {
				return err
			}
			fmt.Println(ui.Success("Wrote " + config.FileName + " with default settings."))
			return nil
		}

		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}
		if database != "" {
			cfg.Database = database
		}

		// Wrong directory is a usage error, not a transient fault.
		if !fs.Exists(fs.Default, cfg.Manifest) {
			fmt.Println(ui.Error(cfg.Manifest + " not found in the current directory."))
			fmt.Println(ui.Info("Run dbpurge from the project root."))
			return fmt.Errorf("%w: %s", ErrManifestMissing, cfg.Manifest)
		}

		// Between-action cancellation: the menu loop blocks on stdin, so
		// an interrupt says goodbye and leaves immediately.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		go func() {
			<-sigCh
			fmt.Println()
			fmt.Println(ui.Info("Interrupted. 👋 Goodbye!"))
			os.Exit(config.ExitSuccess)
		}()

		runner := &execx.Local{Logger: logger}
		client := wrangler.NewClient(runner, cfg.Database, remote)
		session := &Session{
			Config:  cfg,
			Client:  client,
			Runner:  runner,
			Catalog: NewCatalog(client, cfg.Tables),
			In:      os.Stdin,
			Out:     os.Stdout,
		}

		return session.Run()
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
	rootCmd.Flags().Bool("remote", false, "Target the remote/production database instead of the local one")
	rootCmd.Flags().Bool("verbose", false, "Trace every external command")
	rootCmd.Flags().Bool("no-color", false, "Disable colored output")
	rootCmd.Flags().String("database", "", "Override the configured database name")
	rootCmd.Flags().Bool("init", false, "Write a default "+config.FileName+" and exit")
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: flag " + name + " not defined")
	}
	return value
}

func mustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: flag " + name + " not defined")
	}
	return value
}
