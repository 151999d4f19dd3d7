package ui

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Gate reads confirmation answers and free-form lines from one input
// stream. It is the non-TTY counterpart of the huh prompts: scripted and
// piped sessions go through here.
type Gate struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewGate(in io.Reader, out io.Writer) *Gate {
	return &Gate{scanner: bufio.NewScanner(in), out: out}
}

// Recognized answer tokens. The original deployment served a bilingual
// team, so the Chinese synonyms stay.
var (
	affirmative = []string{"y", "yes", "是", "確認"}
	negative    = []string{"n", "no", "否", "取消"}
)

// Confirm asks prompt until a recognized token arrives. Case and
// surrounding whitespace are ignored. Empty input resolves to
// defaultAccept; anything unrecognized re-prompts rather than assuming an
// answer. Returns io.EOF when the input stream ends first.
func (g *Gate) Confirm(prompt string, defaultAccept bool) (bool, error) {
	suffix := "(y/N)"
	if defaultAccept {
		suffix = "(Y/n)"
	}

	for {
		fmt.Fprintf(g.out, "%s %s: ", prompt, suffix)

		line, err := g.readLine()
		if err != nil {
			return false, err
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		switch {
		case answer == "":
			return defaultAccept, nil
		case slices.Contains(affirmative, answer):
			return true, nil
		case slices.Contains(negative, answer):
			return false, nil
		}

		fmt.Fprintln(g.out, Warning("please answer y or n, or press Enter for the default"))
	}
}

// Line prints prompt and returns the next input line, trimmed.
func (g *Gate) Line(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintf(g.out, "%s: ", prompt)
	}
	line, err := g.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (g *Gate) readLine() (string, error) {
	if !g.scanner.Scan() {
		if err := g.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return g.scanner.Text(), nil
}
