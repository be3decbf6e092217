// Package prompt provides interactive line input for rule authoring.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// Prompter wraps basic prompting functionality for testability.
type Prompter interface {
	Prompt(label string) (string, error)
	Close() error
}

// LinerPrompter is the liner-backed Prompter used in production.
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a liner-based prompter with Ctrl+C aborting.
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// Prompt asks for one line of input with a colored label.
func (p *LinerPrompter) Prompt(label string) (string, error) {
	result, err := p.State.Prompt(color.CyanString(label + " "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}
	return result, nil
}
