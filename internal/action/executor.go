package action

import "github.com/caretaker-cli/caretaker/internal/execx"

// Observer is notified around each step so callers can echo progress.
type Observer interface {
	StepStarted(index, total int, step Step)
	StepFinished(index, total int, step Step, result execx.Result)
}

// Execute runs the action's steps in declared order, stopping at the first
// non-zero exit. All-or-nothing sequencing: a user who asked for a
// multi-statement reset is told exactly which step failed instead of having
// later steps run after an earlier failure.
func Execute(runner execx.Runner, act Action, obs Observer) Report {
	report := Report{DeclaredSteps: len(act.Steps)}

	for i, step := range act.Steps {
		if obs != nil {
			obs.StepStarted(i+1, report.DeclaredSteps, step)
		}

		result := runner.Run(step.Executable, step.Args...)
		report.AttemptedSteps++

		if obs != nil {
			obs.StepFinished(i+1, report.DeclaredSteps, step, result)
		}

		if !result.Ok() {
			report.FirstFailure = &StepFailure{Step: step, Result: result}
			break
		}
		report.SucceededSteps++
	}

	report.OverallSuccess = report.FirstFailure == nil &&
		report.SucceededSteps == report.DeclaredSteps
	return report
}
