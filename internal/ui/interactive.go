package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
)

// ErrAborted is returned when the user backs out of a prompt (Esc or
// Ctrl+C inside a form). Callers treat it as a clean cancellation.
var ErrAborted = errors.New("aborted")

// IsInteractive reports whether both ends of the terminal are attached.
func IsInteractive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// IsAbort reports whether err represents a user-initiated prompt abort.
func IsAbort(err error) bool {
	return errors.Is(err, ErrAborted)
}

// NormalizeAbort maps huh's abort sentinel onto ErrAborted.
func NormalizeAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// PromptCommitMessage asks for a commit message with a terminal form.
func PromptCommitMessage() (string, error) {
	var message string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Commit message").
				Placeholder("describe the change").
				Value(&message).
				Validate(validateCommitMessage),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", NormalizeAbort(err)
	}

	return message, nil
}

func validateCommitMessage(s string) error {
	if s == "" {
		return fmt.Errorf("commit message cannot be empty")
	}
	return nil
}

// ConfirmCommit asks whether to commit and push with the given message.
// Enter accepts, matching the default-accept behaviour of the line gate.
func ConfirmCommit(message string) (bool, error) {
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Commit and push?").
				Description(fmt.Sprintf("Commit message: %s", message)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, NormalizeAbort(err)
	}

	return confirmed, nil
}
