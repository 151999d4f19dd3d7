package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateConfirmTokens(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		defaultAccept bool
		want          bool
	}{
		{name: "y accepts", input: "y\n", want: true},
		{name: "yes accepts", input: "yes\n", want: true},
		{name: "uppercase YES accepts", input: "YES\n", want: true},
		{name: "padded answer is trimmed", input: "  y  \n", want: true},
		{name: "chinese affirmative", input: "是\n", want: true},
		{name: "chinese confirm synonym", input: "確認\n", want: true},
		{name: "n rejects", input: "n\n", want: false},
		{name: "no rejects", input: "no\n", want: false},
		{name: "chinese negative", input: "否\n", want: false},
		{name: "chinese cancel synonym", input: "取消\n", want: false},
		{name: "empty resolves to default accept", input: "\n", defaultAccept: true, want: true},
		{name: "empty resolves to default reject", input: "\n", defaultAccept: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewGate(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := gate.Confirm("proceed?", tt.defaultAccept)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateConfirmRepromptsOnUnrecognizedInput(t *testing.T) {
	out := &bytes.Buffer{}
	gate := NewGate(strings.NewReader("maybe\nsure\ny\n"), out)

	got, err := gate.Confirm("proceed?", false)
	require.NoError(t, err)
	assert.True(t, got)

	// One prompt per attempt, two re-prompt notices
	assert.Equal(t, 3, strings.Count(out.String(), "proceed?"))
	assert.Equal(t, 2, strings.Count(out.String(), "please answer"))
}

func TestGateConfirmEOF(t *testing.T) {
	gate := NewGate(strings.NewReader(""), &bytes.Buffer{})
	_, err := gate.Confirm("proceed?", true)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGateConfirmPromptSuffix(t *testing.T) {
	out := &bytes.Buffer{}
	gate := NewGate(strings.NewReader("\n"), out)
	_, err := gate.Confirm("delete everything?", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(y/N)")

	out.Reset()
	gate = NewGate(strings.NewReader("\n"), out)
	_, err = gate.Confirm("commit?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(Y/n)")
}

func TestGateLine(t *testing.T) {
	out := &bytes.Buffer{}
	gate := NewGate(strings.NewReader("  fix bug  \n"), out)

	line, err := gate.Line("Enter commit message")
	require.NoError(t, err)
	assert.Equal(t, "fix bug", line)
	assert.Contains(t, out.String(), "Enter commit message")
}
