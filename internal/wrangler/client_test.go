package wrangler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caretaker-cli/caretaker/internal/execx"
)

type fakeRunner struct {
	responses map[string]execx.Result
	calls     []string
}

func (f *fakeRunner) Run(name string, args ...string) execx.Result {
	call := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, call)
	if res, ok := f.responses[call]; ok {
		return res
	}
	return execx.Result{}
}

func TestCommandArgs(t *testing.T) {
	local := NewClient(&fakeRunner{}, "telegram_news_db", false)
	assert.Equal(t,
		[]string{"d1", "execute", "telegram_news_db", "--command", "DELETE FROM posts;"},
		local.CommandArgs("DELETE FROM posts;"))

	remote := NewClient(&fakeRunner{}, "telegram_news_db", true)
	args := remote.CommandArgs("DELETE FROM posts;")
	assert.Equal(t, "--remote", args[len(args)-1])
}

func TestStepCarriesRemoteFlag(t *testing.T) {
	client := NewClient(&fakeRunner{}, "telegram_news_db", true)
	step := client.Step("clear posts", "DELETE FROM posts;")

	assert.Equal(t, "clear posts", step.Name)
	assert.Equal(t, Binary, step.Executable)
	assert.True(t, step.TargetsRemote)
	assert.Contains(t, step.Args, "--remote")
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		want      int
		wantKnown bool
	}{
		{
			name:      "bare digit line in table output",
			output:    "┌───────┐\n│ count │\n├───────┤\n42\n└───────┘\n",
			want:      42,
			wantKnown: true,
		},
		{
			name:      "zero rows",
			output:    "count\n0\n",
			want:      0,
			wantKnown: true,
		},
		{
			name:      "no numeric line",
			output:    "Executed 1 commands in 0.1s\n",
			wantKnown: false,
		},
		{
			name:      "empty output",
			output:    "",
			wantKnown: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := parseCount(tt.output)
			assert.Equal(t, tt.wantKnown, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestCountsDegradePerTable(t *testing.T) {
	runner := &fakeRunner{responses: map[string]execx.Result{
		"wrangler d1 execute telegram_news_db --command SELECT COUNT(*) AS count FROM deliveries;": {Stdout: "count\n7\n"},
		"wrangler d1 execute telegram_news_db --command SELECT COUNT(*) AS count FROM posts;":      {ExitCode: 1, Stderr: "no such table"},
		"wrangler d1 execute telegram_news_db --command SELECT COUNT(*) AS count FROM subscriptions;": {Stdout: "count\n0\n"},
	}}
	client := NewClient(runner, "telegram_news_db", false)

	counts := client.Counts([]string{"deliveries", "posts", "subscriptions"})

	assert.Equal(t, []TableCount{
		{Table: "deliveries", Count: 7, Known: true},
		{Table: "posts", Known: false},
		{Table: "subscriptions", Count: 0, Known: true},
	}, counts)
	assert.Len(t, runner.calls, 3, "one failing table must not stop the others")
}

func TestHints(t *testing.T) {
	launchFailed := execx.Result{ExitCode: 1, LaunchErr: errors.New("not found"), Stderr: "not found"}
	hints := Hints(launchFailed, false)
	assert.Len(t, hints, 1)
	assert.Contains(t, hints[0], "install")

	remoteFailed := execx.Result{ExitCode: 1, Stderr: "authentication error"}
	hints = Hints(remoteFailed, true)
	assert.Len(t, hints, 4)
	assert.Contains(t, strings.Join(hints, "\n"), "wrangler auth login")

	localFailed := execx.Result{ExitCode: 1, Stderr: "syntax error"}
	assert.Empty(t, Hints(localFailed, false))
}
