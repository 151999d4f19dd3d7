package ui

import (
	"fmt"
	"strings"
)

// MenuEntry is one selectable line of the interactive menu.
type MenuEntry struct {
	Key    string
	Label  string
	Danger bool
}

// RenderMenu renders the numbered action menu as display text.
func RenderMenu(title string, entries []MenuEntry) string {
	var b strings.Builder

	b.WriteString(render(HeaderStyle, title))
	b.WriteString("\n\n")

	for _, entry := range entries {
		style := SuccessStyle
		if entry.Danger {
			style = ErrorStyle
		}
		fmt.Fprintf(&b, "  %s %s\n", render(style, entry.Key+"."), entry.Label)
	}

	return b.String()
}
