package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestIsRepository(t *testing.T) {
	runner := &fakeRunner{responses: map[string]execx.Result{
		"git rev-parse --git-dir": {ExitCode: 128, Stderr: "fatal: not a git repository"},
	}}
	client := NewClient(runner)

	assert.False(t, client.IsRepository())
	assert.Equal(t, []string{"git rev-parse --git-dir"}, runner.calls)

	assert.True(t, NewClient(&fakeRunner{}).IsRepository())
}

func TestCurrentBranchTrimsOutput(t *testing.T) {
	runner := &fakeRunner{responses: map[string]execx.Result{
		"git branch --show-current": {Stdout: "main\n"},
	}}

	branch, err := NewClient(runner).CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestPushFailureCarriesStderr(t *testing.T) {
	runner := &fakeRunner{responses: map[string]execx.Result{
		"git push origin main": {ExitCode: 1, Stderr: "remote: permission denied\n"},
	}}

	err := NewClient(runner).Push("origin", "main")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

// setupShipTestRepo creates a temporary git repository with one commit.
func setupShipTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	cmd := exec.Command("git", "init", "-b", "main")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())

	exec.Command("git", "-C", dir, "config", "user.name", "Test User").Run()
	exec.Command("git", "-C", dir, "config", "user.email", "test@example.com").Run()

	readmePath := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte("# Test Repo\n"), 0644))

	exec.Command("git", "-C", dir, "add", "README.md").Run()
	exec.Command("git", "-C", dir, "commit", "-m", "Initial commit").Run()

	return dir
}

func TestClientAgainstRealRepository(t *testing.T) {
	dir := setupShipTestRepo(t)
	client := NewClient(&execx.Local{Dir: dir})

	assert.True(t, client.IsRepository())

	status, err := client.Status()
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(status), "fresh repo should be clean")

	// Modify a tracked file and add a new one
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Changed\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("new\n"), 0644))

	status, err = client.Status()
	require.NoError(t, err)
	changes := ParseStatus(status)
	assert.Len(t, changes, 2)

	require.NoError(t, client.StageAll())
	require.NoError(t, client.Commit("fix bug"))

	status, err = client.Status()
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(status), "everything should be committed")

	branch, err := client.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestClientOutsideRepository(t *testing.T) {
	client := NewClient(&execx.Local{Dir: t.TempDir()})
	assert.False(t, client.IsRepository())
}
