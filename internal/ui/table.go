package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderCountsTable renders per-table row counts. Rows carrying the
// unknown marker are highlighted as warnings instead of counts.
func RenderCountsTable(rows [][]string, unknownMarker string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Primary)).
		Headers("TABLE", "ROWS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(Primary)
			}
			if col == 1 {
				if row >= 0 && row < len(rows) && rows[row][1] == unknownMarker {
					return lipgloss.NewStyle().Foreground(ColorWarning)
				}
				return lipgloss.NewStyle().Foreground(ColorSuccess)
			}
			return lipgloss.Style{}
		})

	for _, row := range rows {
		t.Row(row...)
	}

	return fmt.Sprintf("\n%s\n", t.String())
}
