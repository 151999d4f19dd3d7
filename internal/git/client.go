// Package git wraps the git binary for the shipping workflow. All state
// lives in the repository itself, so every query runs fresh against it.
package git

import (
	"fmt"
	"strings"

	"github.com/caretaker-cli/caretaker/internal/execx"
)

// Client issues git commands through a Runner. It holds no state of its
// own, so one client serves an entire workflow run.
type Client struct {
	runner execx.Runner
}

func NewClient(runner execx.Runner) *Client {
	return &Client{runner: runner}
}

// IsRepository reports whether the working directory is inside a git
// repository. The probe is read-only.
func (c *Client) IsRepository() bool {
	return c.runner.Run("git", "rev-parse", "--git-dir").Ok()
}

// Status returns the porcelain status output. Empty output means the
// working copy is clean.
func (c *Client) Status() (string, error) {
	result := c.runner.Run("git", "status", "--porcelain")
	if !result.Ok() {
		return "", fmt.Errorf("git status failed: %s", strings.TrimSpace(result.Stderr))
	}
	return result.Stdout, nil
}

// StageAll stages every change under the working directory.
func (c *Client) StageAll() error {
	result := c.runner.Run("git", "add", ".")
	if !result.Ok() {
		return fmt.Errorf("git add failed: %s", strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(message string) error {
	result := c.runner.Run("git", "commit", "-m", message)
	if !result.Ok() {
		return fmt.Errorf("git commit failed: %s", strings.TrimSpace(result.Stderr))
	}
	return nil
}

// CurrentBranch returns the checked-out branch name, or empty string on a
// detached HEAD.
func (c *Client) CurrentBranch() (string, error) {
	result := c.runner.Run("git", "branch", "--show-current")
	if !result.Ok() {
		return "", fmt.Errorf("resolving current branch: %s", strings.TrimSpace(result.Stderr))
	}
	return strings.TrimSpace(result.Stdout), nil
}

// Push pushes the given branch to the named remote.
func (c *Client) Push(remote, branch string) error {
	result := c.runner.Run("git", "push", remote, branch)
	if !result.Ok() {
		return fmt.Errorf("git push failed: %s", strings.TrimSpace(result.Stderr))
	}
	return nil
}
