// Package rtio implements the I/O adapter used by running programs:
// line input for read statements and line output for write statements.
package rtio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Input supplies one input unit (a line, without its terminator) per call.
// ReadLine returns io.EOF when no more input is available.
type Input interface {
	ReadLine() (string, error)
}

// Output consumes rendered values, one line per call, in program order.
type Output interface {
	WriteLine(s string) error
}

// LineInput reads lines from an io.Reader.
type LineInput struct {
	r *bufio.Reader
}

// NewLineInput returns an Input reading lines from r.
func NewLineInput(r io.Reader) *LineInput {
	return &LineInput{r: bufio.NewReader(r)}
}

// ReadLine implements Input. A final line without a terminator is
// returned as a normal line.
func (in *LineInput) ReadLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("rtio: read: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ScriptedInput returns fixed lines first and then falls back to another
// Input. A nil fallback reports io.EOF once the script is exhausted.
type ScriptedInput struct {
	lines    []string
	next     int
	fallback Input
}

// NewScriptedInput returns an Input yielding lines, then reading from fallback.
func NewScriptedInput(lines []string, fallback Input) *ScriptedInput {
	return &ScriptedInput{lines: lines, fallback: fallback}
}

// ReadLine implements Input.
func (in *ScriptedInput) ReadLine() (string, error) {
	if in.next < len(in.lines) {
		line := in.lines[in.next]
		in.next++
		return line, nil
	}
	if in.fallback == nil {
		return "", io.EOF
	}
	return in.fallback.ReadLine()
}

// Remaining returns the number of scripted lines not yet consumed.
func (in *ScriptedInput) Remaining() int {
	return len(in.lines) - in.next
}

// WriterOutput writes each line to an io.Writer as soon as it is produced.
type WriterOutput struct {
	w io.Writer
}

// NewWriterOutput returns an Output writing to w.
func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: w}
}

// WriteLine implements Output.
func (out *WriterOutput) WriteLine(s string) error {
	if _, err := io.WriteString(out.w, s+"\n"); err != nil {
		return fmt.Errorf("rtio: write: %w", err)
	}
	return nil
}

// Recorder keeps a transcript of every line written and forwards it to
// an optional Output.
type Recorder struct {
	lines []string
	next  Output
}

// NewRecorder returns a Recorder forwarding to next, which may be nil.
func NewRecorder(next Output) *Recorder {
	return &Recorder{next: next}
}

// WriteLine implements Output. A line is recorded only once it has been
// accepted by the forwarded Output.
func (r *Recorder) WriteLine(s string) error {
	if r.next != nil {
		if err := r.next.WriteLine(s); err != nil {
			return err
		}
	}
	r.lines = append(r.lines, s)
	return nil
}

// Lines returns the recorded lines in order.
func (r *Recorder) Lines() []string {
	return r.lines
}
