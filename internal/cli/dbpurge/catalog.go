package dbpurge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caretaker-cli/caretaker/internal/action"
	"github.com/caretaker-cli/caretaker/internal/config"
	"github.com/caretaker-cli/caretaker/internal/wrangler"
)

// MenuItem binds one menu key to a pre-declared action.
type MenuItem struct {
	Key           string
	Label         string
	Action        action.Action
	ConfirmPrompt string
}

// Catalog is the closed set of destructive operations plus the key of the
// read-only status view. Built once at startup from the configured tables;
// nothing is added at runtime.
type Catalog struct {
	Items     []MenuItem
	StatusKey string
}

// NewCatalog declares every menu action against the given client. Each
// composite operation is an explicit ordered sequence of single-statement
// steps; there is no runtime statement splitting.
func NewCatalog(client *wrangler.Client, tables []config.Table) *Catalog {
	catalog := &Catalog{}
	key := 0
	next := func() string {
		key++
		return strconv.Itoa(key)
	}

	clearSteps := make([]action.Step, 0, len(tables))
	for _, table := range tables {
		clearSteps = append(clearSteps,
			client.Step("clear "+table.Name, deleteStmt(table.Name)))
	}

	catalog.Items = append(catalog.Items, MenuItem{
		Key:   next(),
		Label: "Clear all tables (recommended)",
		Action: action.Action{
			Name:                 "clear-all",
			Description:          "Clear all tables",
			Steps:                clearSteps,
			RequiresConfirmation: true,
		},
		ConfirmPrompt: "Clear ALL tables? This cannot be undone!",
	})

	resetSteps := append(append([]action.Step{}, clearSteps...),
		client.Step("reset autoincrement counters", resetCountersStmt(tables)))
	catalog.Items = append(catalog.Items, MenuItem{
		Key:   next(),
		Label: "Full reset (including counters)",
		Action: action.Action{
			Name:                 "full-reset",
			Description:          "Clear all tables and reset autoincrement counters",
			Steps:                resetSteps,
			RequiresConfirmation: true,
		},
		ConfirmPrompt: "Fully reset ALL tables and counters? This cannot be undone!",
	})

	for _, table := range tables {
		catalog.Items = append(catalog.Items, MenuItem{
			Key:   next(),
			Label: fmt.Sprintf("Clear %s only (%s)", table.Name, table.Description),
			Action: action.Action{
				Name:                 "clear-" + table.Name,
				Description:          "Clear the " + table.Name + " table",
				Steps:                []action.Step{client.Step("clear "+table.Name, deleteStmt(table.Name))},
				RequiresConfirmation: true,
			},
			ConfirmPrompt: fmt.Sprintf("Clear the %s table?", table.Name),
		})
	}

	stepwise := make([]action.Step, 0, len(tables))
	for _, table := range tables {
		stepwise = append(stepwise,
			client.Step(fmt.Sprintf("clear %s (%s)", table.Name, table.Description), deleteStmt(table.Name)))
	}
	catalog.Items = append(catalog.Items, MenuItem{
		Key:   next(),
		Label: "Clear tables step by step",
		Action: action.Action{
			Name:                 "clear-stepwise",
			Description:          "Clear each table in sequence, reporting every step",
			Steps:                stepwise,
			RequiresConfirmation: true,
		},
		ConfirmPrompt: "Clear all tables step by step? This cannot be undone!",
	})

	catalog.StatusKey = next()
	return catalog
}

// Lookup returns the item bound to key.
func (c *Catalog) Lookup(key string) (MenuItem, bool) {
	for _, item := range c.Items {
		if item.Key == key {
			return item, true
		}
	}
	return MenuItem{}, false
}

// MaxKey is the highest selectable menu number, for the prompt range.
func (c *Catalog) MaxKey() string {
	return c.StatusKey
}

func deleteStmt(table string) string {
	return "DELETE FROM " + table + ";"
}

func resetCountersStmt(tables []config.Table) string {
	quoted := make([]string, 0, len(tables))
	for _, table := range tables {
		quoted = append(quoted, "'"+table.Name+"'")
	}
	return "UPDATE sqlite_sequence SET seq = 0 WHERE name IN (" + strings.Join(quoted, ", ") + ");"
}
