package execx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalRun(t *testing.T) {
	tests := []struct {
		name         string
		command      string
		args         []string
		wantExitCode int
		wantStdout   string
		wantStderr   string
	}{
		{
			name:         "successful command captures stdout",
			command:      "sh",
			args:         []string{"-c", "echo hello"},
			wantExitCode: 0,
			wantStdout:   "hello\n",
		},
		{
			name:         "non-zero exit code is reported",
			command:      "sh",
			args:         []string{"-c", "exit 3"},
			wantExitCode: 3,
		},
		{
			name:         "stderr is captured separately",
			command:      "sh",
			args:         []string{"-c", "echo oops 1>&2; exit 2"},
			wantExitCode: 2,
			wantStderr:   "oops\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &Local{}
			result := runner.Run(tt.command, tt.args...)

			assert.Equal(t, tt.wantExitCode, result.ExitCode)
			assert.Equal(t, tt.wantStdout, result.Stdout)
			assert.Equal(t, tt.wantStderr, result.Stderr)
			assert.True(t, result.Launched())
			assert.Equal(t, tt.wantExitCode == 0, result.Ok())
		})
	}
}

func TestLocalRunMissingExecutable(t *testing.T) {
	runner := &Local{}
	result := runner.Run("definitely-not-a-real-binary-xyz")

	assert.False(t, result.Ok())
	assert.False(t, result.Launched())
	assert.Equal(t, 1, result.ExitCode)
	assert.NotEmpty(t, result.Stderr, "launch error text should land in stderr")
}

func TestLocalRunWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	runner := &Local{Dir: dir}
	result := runner.Run("pwd")

	assert.True(t, result.Ok())
	assert.Contains(t, result.Stdout, filepath.Base(dir))
}
