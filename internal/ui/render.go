package ui

// Pure formatting helpers: each takes a message and returns display text.
// Workflows write the result to their own output stream, which keeps every
// line testable and leaves no shared presentation state.

// Header renders a boxed section title.
func Header(title string) string {
	return render(BoxStyle, render(HeaderStyle, title))
}

// Step renders an in-progress phase announcement.
func Step(msg string) string {
	return render(StepStyle, "→ "+msg)
}

// Info renders a neutral informational line.
func Info(msg string) string {
	return render(InfoStyle, msg)
}

// Muted renders a low-emphasis line, e.g. an echoed command.
func Muted(msg string) string {
	return render(MutedStyle, msg)
}

// Success renders a per-step success line.
func Success(msg string) string {
	return render(SuccessStyle, "✓ "+msg)
}

// Warning renders a non-fatal problem or a remediation hint.
func Warning(msg string) string {
	return render(WarningStyle, "! "+msg)
}

// Error renders a failure line.
func Error(msg string) string {
	return render(ErrorStyle, "✗ "+msg)
}

// Done renders a workflow completion line.
func Done(msg string) string {
	return render(SuccessStyle.Bold(true), "🎉 "+msg)
}

// DangerLabel renders a high-alert badge, e.g. the remote-mode banner.
func DangerLabel(msg string) string {
	return render(DangerBadge, msg)
}

// SafeLabel renders a reassuring badge, e.g. the local-mode banner.
func SafeLabel(msg string) string {
	return render(SafeBadge, msg)
}
