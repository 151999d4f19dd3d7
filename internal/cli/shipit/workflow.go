package shipit

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh/spinner"

	"github.com/caretaker-cli/caretaker/internal/git"
	"github.com/caretaker-cli/caretaker/internal/ui"
)

var (
	// ErrNotARepository marks the fatal precondition failure: the tool
	// was started outside a working copy.
	ErrNotARepository = errors.New("not a git repository")

	// ErrEmptyMessage marks an aborted run due to an empty commit message.
	ErrEmptyMessage = errors.New("commit message cannot be empty")
)

// Workflow runs the full stage/commit/push pass. State lives entirely in
// the repository; the workflow itself only carries its collaborators.
type Workflow struct {
	Git *git.Client
	In  io.Reader
	Out io.Writer

	// Interactive selects the terminal forms over the line gate.
	Interactive bool

	// Remote is the push target, normally "origin".
	Remote string
}

// Run drives the workflow to completion. A clean working copy and a
// declined confirmation both return nil: nothing went wrong, there was
// simply nothing to do.
func (w *Workflow) Run() error {
	fmt.Fprintln(w.Out, ui.Header("Ship working copy changes"))

	if !w.Git.IsRepository() {
		fmt.Fprintln(w.Out, ui.Error("The current directory is not a git repository."))
		fmt.Fprintln(w.Out, ui.Info("Run shipit from inside a working copy."))
		return ErrNotARepository
	}

	status, err := w.Git.Status()
	if err != nil {
		fmt.Fprintln(w.Out, ui.Error(err.Error()))
		return err
	}

	changes := git.ParseStatus(status)
	if len(changes) == 0 {
		fmt.Fprintln(w.Out, ui.Info("Nothing to commit; the working copy is clean."))
		return nil
	}

	fmt.Fprintln(w.Out, ui.Step(fmt.Sprintf("Detected %d changed file(s):", len(changes))))
	for _, change := range changes {
		fmt.Fprintf(w.Out, "  %s %s\n", ui.Muted(fmt.Sprintf("%-10s", change.Label())), change.Path)
	}

	fmt.Fprintln(w.Out, ui.Step("Staging all changes..."))
	if err := w.Git.StageAll(); err != nil {
		fmt.Fprintln(w.Out, ui.Error(err.Error()))
		return err
	}
	fmt.Fprintln(w.Out, ui.Success("Changes staged."))

	gate := ui.NewGate(w.In, w.Out)

	message, err := w.readMessage(gate)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			fmt.Fprintln(w.Out, ui.Error("Commit message cannot be empty."))
		case ui.IsAbort(err):
			fmt.Fprintln(w.Out, ui.Info("Commit cancelled."))
		}
		return err
	}

	confirmed, err := w.confirm(gate, message)
	if err != nil {
		if ui.IsAbort(err) {
			fmt.Fprintln(w.Out, ui.Info("Commit cancelled."))
			return nil
		}
		return err
	}
	if !confirmed {
		// Declining is a clean early exit, not a failure.
		fmt.Fprintln(w.Out, ui.Info("Commit cancelled."))
		return nil
	}

	fmt.Fprintln(w.Out, ui.Step("Committing..."))
	if err := w.Git.Commit(message); err != nil {
		fmt.Fprintln(w.Out, ui.Error(err.Error()))
		return err
	}
	fmt.Fprintln(w.Out, ui.Success("Changes committed."))

	branch, err := w.Git.CurrentBranch()
	if err != nil {
		fmt.Fprintln(w.Out, ui.Error(err.Error()))
		return err
	}
	if branch == "" {
		err := errors.New("cannot push from a detached HEAD")
		fmt.Fprintln(w.Out, ui.Error(err.Error()))
		return err
	}

	if err := w.push(branch); err != nil {
		fmt.Fprintln(w.Out, ui.Error(err.Error()))
		return err
	}
	fmt.Fprintln(w.Out, ui.Success(fmt.Sprintf("Pushed to %s/%s.", w.Remote, branch)))

	fmt.Fprintln(w.Out, ui.Done("All done!"))
	return nil
}

func (w *Workflow) readMessage(gate *ui.Gate) (string, error) {
	if w.Interactive {
		return ui.PromptCommitMessage()
	}

	message, err := gate.Line("Enter commit message")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	return message, nil
}

func (w *Workflow) confirm(gate *ui.Gate, message string) (bool, error) {
	if w.Interactive {
		return ui.ConfirmCommit(message)
	}

	fmt.Fprintln(w.Out, ui.Info(fmt.Sprintf("Commit message: %s", message)))
	return gate.Confirm("Commit and push?", true)
}

func (w *Workflow) push(branch string) error {
	if !w.Interactive {
		fmt.Fprintln(w.Out, ui.Step(fmt.Sprintf("Pushing to %s/%s...", w.Remote, branch)))
		return w.Git.Push(w.Remote, branch)
	}

	var pushErr error
	title := fmt.Sprintf("Pushing to %s/%s...", w.Remote, branch)
	if err := spinner.New().Title(title).Action(func() {
		pushErr = w.Git.Push(w.Remote, branch)
	}).Run(); err != nil {
		return err
	}
	return pushErr
}
