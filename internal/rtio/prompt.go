package rtio

import (
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"
)

// PromptInput reads lines interactively from the terminal with line editing.
type PromptInput struct {
	ln     *liner.State
	prompt string
}

// NewPromptInput puts the terminal in line-editing mode. Close must be
// called to restore it.
func NewPromptInput(prompt string) *PromptInput {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &PromptInput{ln: ln, prompt: prompt}
}

// ReadLine implements Input. Ctrl-D and Ctrl-C end the input.
func (p *PromptInput) ReadLine() (string, error) {
	line, err := p.ln.Prompt(p.prompt)
	if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("rtio: prompt: %w", err)
	}
	p.ln.AppendHistory(line)
	return line, nil
}

// Close restores the terminal.
func (p *PromptInput) Close() error {
	return p.ln.Close()
}
