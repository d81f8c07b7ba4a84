package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/algovista/algovista/core"
	"github.com/algovista/algovista/host"
)

var errNoInput = errors.New("no input")

// linePrompter implements host.Prompter over line-oriented text streams.
type linePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ host.Prompter = (*linePrompter)(nil)

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewScanner(in), out: out}
}

// line prints prompt and returns the next trimmed input line.
func (p *linePrompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AskInt returns def for an empty answer. Range checking is left to the
// caller so it can phrase its own message.
func (p *linePrompter) AskInt(prompt string, def, min, max int) (int, error) {
	s, err := p.line(fmt.Sprintf("%s [%d, %d..%d] ", prompt, def, min, max))
	if err != nil {
		return 0, err
	}
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// AskWeight returns 1 for an empty answer.
func (p *linePrompter) AskWeight(from, to core.NodeID) (int64, error) {
	s, err := p.line(fmt.Sprintf("Enter weight for edge %d → %d: [1] ", from, to))
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 1, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// Alert implements host.Prompter.
func (p *linePrompter) Alert(title, msg string) {
	fmt.Fprintf(p.out, "%s: %s\n", title, msg)
}
