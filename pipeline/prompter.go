package pipeline

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// A ReadlinePrompter prompts the user for input with line editing and
// history support.
type ReadlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter creates a ReadlinePrompter.
func NewReadlinePrompter() (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryLimit:      1000,
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// Prompt shows the prompt p to the user and returns the line entered.
// Ctrl-C and Ctrl-D both end the session with io.EOF.
func (rp *ReadlinePrompter) Prompt(p string) (string, error) {
	rp.rl.SetPrompt(p)
	line, err := rp.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

// Close releases the underlying terminal.
func (rp *ReadlinePrompter) Close() error {
	return rp.rl.Close()
}
