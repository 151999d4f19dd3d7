package dbpurge

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/caretaker-cli/caretaker/internal/action"
	"github.com/caretaker-cli/caretaker/internal/config"
	"github.com/caretaker-cli/caretaker/internal/execx"
	"github.com/caretaker-cli/caretaker/internal/ui"
	"github.com/caretaker-cli/caretaker/internal/wrangler"
)

// unknownMarker is rendered in place of a row count when the query failed.
const unknownMarker = "unknown"

// Session is one interactive menu run. It owns no external state: every
// status query hits the database fresh, and every action runs through the
// sequential executor.
type Session struct {
	Config  config.Config
	Client  *wrangler.Client
	Runner  execx.Runner
	Catalog *Catalog
	In      io.Reader
	Out     io.Writer

	gate *ui.Gate
}

// Run renders the menu until the user exits or input ends. Action failures
// return control to the menu; only input-level errors end the session.
func (s *Session) Run() error {
	s.gate = ui.NewGate(s.In, s.Out)
	s.printBanner()

	for {
		fmt.Fprintln(s.Out, ui.RenderMenu("Select an operation", s.menuEntries()))

		choice, err := s.gate.Line(fmt.Sprintf("Enter an option (0-%s)", s.Catalog.MaxKey()))
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.farewell()
				return nil
			}
			return err
		}

		switch {
		case choice == "0":
			s.farewell()
			return nil
		case choice == s.Catalog.StatusKey:
			s.showStatus()
		default:
			item, ok := s.Catalog.Lookup(choice)
			if !ok {
				fmt.Fprintln(s.Out, ui.Error(fmt.Sprintf(
					"Invalid option; enter a number between 0 and %s.", s.Catalog.MaxKey())))
				continue
			}
			s.runAction(item)
			if err := s.pause(); err != nil {
				s.farewell()
				return nil
			}
		}
	}
}

func (s *Session) menuEntries() []ui.MenuEntry {
	entries := make([]ui.MenuEntry, 0, len(s.Catalog.Items)+2)
	for _, item := range s.Catalog.Items {
		entries = append(entries, ui.MenuEntry{Key: item.Key, Label: item.Label})
	}
	entries = append(entries,
		ui.MenuEntry{Key: s.Catalog.StatusKey, Label: "Show table status"},
		ui.MenuEntry{Key: "0", Label: "Exit", Danger: true},
	)
	return entries
}

func (s *Session) printBanner() {
	fmt.Fprintln(s.Out, ui.Header("Table maintenance: "+s.Config.Database))
	if s.Client.Remote() {
		fmt.Fprintln(s.Out, ui.DangerLabel("REMOTE DATABASE MODE"))
		fmt.Fprintln(s.Out, ui.Warning("All operations run against the production database!"))
	} else {
		fmt.Fprintln(s.Out, ui.SafeLabel("LOCAL DATABASE MODE"))
		fmt.Fprintln(s.Out, ui.Info("Operations run against the local development database."))
	}
	fmt.Fprintln(s.Out)
}

func (s *Session) runAction(item MenuItem) {
	if item.Action.RequiresConfirmation {
		confirmed, err := s.gate.Confirm("⚠ "+item.ConfirmPrompt, item.Action.DefaultConfirm)
		if err != nil || !confirmed {
			fmt.Fprintln(s.Out, ui.Info("Cancelled."))
			return
		}
	}

	fmt.Fprintln(s.Out, ui.Step(item.Action.Description))
	report := action.Execute(s.Runner, item.Action, s)
	s.printReport(report)
}

func (s *Session) printReport(report action.Report) {
	if report.OverallSuccess {
		fmt.Fprintln(s.Out, ui.Done(fmt.Sprintf(
			"All commands completed (%d/%d).", report.SucceededSteps, report.DeclaredSteps)))
		if !s.Client.Remote() && report.DeclaredSteps > 1 {
			fmt.Fprintln(s.Out, ui.Info("Tip: start with --remote to run against the remote database."))
		}
		return
	}

	failure := report.FirstFailure
	fmt.Fprintln(s.Out, ui.Error(fmt.Sprintf(
		"Step %d/%d failed: %s", report.AttemptedSteps, report.DeclaredSteps, failure.Step.Name)))
	if stderr := strings.TrimSpace(failure.Result.Stderr); stderr != "" {
		fmt.Fprintln(s.Out, ui.Muted(stderr))
	}
	for _, hint := range wrangler.Hints(failure.Result, s.Client.Remote()) {
		fmt.Fprintln(s.Out, ui.Warning(hint))
	}
}

// StepStarted echoes the exact command before it runs.
func (s *Session) StepStarted(index, total int, step action.Step) {
	fmt.Fprintln(s.Out, ui.Muted(fmt.Sprintf(
		"command %d/%d: %s %s", index, total, step.Executable, strings.Join(step.Args, " "))))
}

// StepFinished reports per-step success and any captured output.
func (s *Session) StepFinished(index, total int, step action.Step, result execx.Result) {
	if !result.Ok() {
		return
	}
	fmt.Fprintln(s.Out, ui.Success(fmt.Sprintf("command %d succeeded", index)))
	if out := strings.TrimSpace(result.Stdout); out != "" {
		fmt.Fprintln(s.Out, ui.Muted(out))
	}
}

func (s *Session) showStatus() {
	fmt.Fprintln(s.Out, ui.Step("Querying table status..."))
	if !s.Client.Remote() {
		fmt.Fprintln(s.Out, ui.Info("Tip: start with --remote to query the remote database."))
	}

	counts := s.Client.Counts(s.Config.TableNames())
	rows := make([][]string, 0, len(counts))
	for _, count := range counts {
		value := unknownMarker
		if count.Known {
			value = strconv.Itoa(count.Count)
		}
		rows = append(rows, []string{count.Table, value})
	}

	fmt.Fprintln(s.Out, ui.RenderCountsTable(rows, unknownMarker))
}

func (s *Session) pause() error {
	fmt.Fprint(s.Out, ui.Muted("Press Enter to continue..."))
	_, err := s.gate.Line("")
	fmt.Fprintln(s.Out)
	return err
}

func (s *Session) farewell() {
	fmt.Fprintln(s.Out, ui.Info("👋 Goodbye!"))
}
