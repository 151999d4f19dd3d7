// Package wrangler drives the Cloudflare Workers CLI for D1 database
// maintenance. Statements run as one external process each; the tool never
// opens a database connection of its own.
package wrangler

import (
	"strconv"
	"strings"

	"github.com/caretaker-cli/caretaker/internal/action"
	"github.com/caretaker-cli/caretaker/internal/execx"
)

// Binary is the executable every statement is dispatched through.
const Binary = "wrangler"

// Client builds and runs `wrangler d1 execute` invocations against one
// named database, either locally or with --remote.
type Client struct {
	runner   execx.Runner
	database string
	remote   bool
}

func NewClient(runner execx.Runner, database string, remote bool) *Client {
	return &Client{runner: runner, database: database, remote: remote}
}

// Remote reports whether the client targets the remote database.
func (c *Client) Remote() bool { return c.remote }

// CommandArgs returns the argument list for executing stmt against the
// configured database.
func (c *Client) CommandArgs(stmt string) []string {
	args := []string{"d1", "execute", c.database, "--command", stmt}
	if c.remote {
		args = append(args, "--remote")
	}
	return args
}

// Execute runs a single SQL statement and returns the raw result.
func (c *Client) Execute(stmt string) execx.Result {
	return c.runner.Run(Binary, c.CommandArgs(stmt)...)
}

// Step declares one SQL statement as an action step.
func (c *Client) Step(name, stmt string) action.Step {
	return action.Step{
		Name:          name,
		Executable:    Binary,
		Args:          c.CommandArgs(stmt),
		TargetsRemote: c.remote,
	}
}

// TableCount is the row count of one table, or an unknown marker when the
// query failed.
type TableCount struct {
	Table string
	Count int
	Known bool
}

// Count queries the row count of a single table. Known is false when the
// query fails or the output carries no numeric line.
func (c *Client) Count(table string) TableCount {
	result := c.Execute("SELECT COUNT(*) AS count FROM " + table + ";")
	if !result.Ok() {
		return TableCount{Table: table}
	}
	n, ok := parseCount(result.Stdout)
	return TableCount{Table: table, Count: n, Known: ok}
}

// Counts queries each table independently. A per-table failure degrades to
// an unknown marker rather than aborting the report; partial information
// beats total failure for a read-only diagnostic.
func (c *Client) Counts(tables []string) []TableCount {
	counts := make([]TableCount, 0, len(tables))
	for _, table := range tables {
		counts = append(counts, c.Count(table))
	}
	return counts
}

// parseCount scans wrangler's table-formatted output for the first line
// that is a bare integer.
func parseCount(output string) (int, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 0 {
			return n, true
		}
	}
	return 0, false
}
