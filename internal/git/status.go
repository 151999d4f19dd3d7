package git

import "strings"

// Change is one entry parsed from porcelain status output.
type Change struct {
	// Code is the two-character porcelain status code, e.g. " M" or "??".
	Code string
	Path string
}

// Label translates the status code into a short human-readable word for
// the pre-commit preview.
func (c Change) Label() string {
	switch {
	case strings.Contains(c.Code, "?"):
		return "untracked"
	case strings.Contains(c.Code, "A"):
		return "added"
	case strings.Contains(c.Code, "D"):
		return "deleted"
	case strings.Contains(c.Code, "R"):
		return "renamed"
	case strings.Contains(c.Code, "C"):
		return "copied"
	case strings.Contains(c.Code, "U"):
		return "conflicted"
	case strings.Contains(c.Code, "M"):
		return "modified"
	default:
		return "changed"
	}
}

// ParseStatus splits porcelain output into individual changes. Lines too
// short to carry a code and a path are skipped.
func ParseStatus(output string) []Change {
	var changes []Change
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < 4 {
			continue
		}
		changes = append(changes, Change{
			Code: line[:2],
			Path: strings.TrimSpace(line[3:]),
		})
	}
	return changes
}
