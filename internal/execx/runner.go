// Package execx runs external commands synchronously and folds every
// failure mode into a single Result value, so callers branch on the exit
// code rather than on returned errors.
package execx

import (
	"bytes"
	"errors"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Result captures one external process invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string

	// LaunchErr is set when the process could not be started at all,
	// e.g. the binary is not installed. ExitCode is 1 and Stderr carries
	// the error text so the usual failure check still applies.
	LaunchErr error
}

// Ok reports whether the command exited successfully.
func (r Result) Ok() bool { return r.ExitCode == 0 }

// Launched reports whether the process actually started.
func (r Result) Launched() bool { return r.LaunchErr == nil }

// Runner executes one external command and blocks until it exits.
type Runner interface {
	Run(name string, args ...string) Result
}

// Local runs commands on the local machine via os/exec.
type Local struct {
	// Dir is the working directory for spawned commands. Empty means the
	// current process directory.
	Dir string

	// Logger, when set, traces every invocation at debug level.
	Logger *log.Logger
}

func (l *Local) Run(name string, args ...string) Result {
	if l.Logger != nil {
		l.Logger.Debug("exec", "command", name, "args", args)
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = l.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// The process never started: missing binary, permission
			// problem, or a bad working directory.
			result.ExitCode = 1
			result.Stderr = err.Error()
			result.LaunchErr = err
		}
	}

	if l.Logger != nil {
		l.Logger.Debug("exec finished", "command", name, "exit", result.ExitCode)
	}

	return result
}
