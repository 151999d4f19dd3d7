// Package action declares the catalog of named maintenance operations and
// runs their external command steps in order.
package action

import "github.com/caretaker-cli/caretaker/internal/execx"

// Step is one external command inside an action. Composite operations are
// declared as an explicit ordered sequence of steps; the declaration is the
// single source of truth for step boundaries.
type Step struct {
	// Name is a short human-readable label for progress output.
	Name string

	Executable string
	Args       []string

	// TargetsRemote marks steps that mutate a remote/production resource.
	TargetsRemote bool
}

// Action is a named, pre-declared sequence of steps selectable from a menu.
// The catalog is closed at build time; actions are never created at runtime.
type Action struct {
	Name        string
	Description string
	Steps       []Step

	RequiresConfirmation bool

	// DefaultConfirm is the answer an empty confirmation input resolves to.
	DefaultConfirm bool
}

// StepFailure pairs the failing step with its captured result.
type StepFailure struct {
	Step   Step
	Result execx.Result
}

// Report aggregates one execution of an action. AttemptedSteps and
// SucceededSteps count only steps that were actually invoked; the first
// failure short-circuits the remainder of the declared sequence.
type Report struct {
	DeclaredSteps  int
	AttemptedSteps int
	SucceededSteps int
	FirstFailure   *StepFailure
	OverallSuccess bool
}
