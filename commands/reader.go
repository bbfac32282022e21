package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/abiosoft/readline"
)

// ErrInterrupted is returned by a LineReader when the user abandons the
// line being typed.
var ErrInterrupted = errors.New("interrupted")

// LineReader shows a prompt and reads one line of input. It returns io.EOF
// when input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewBufferedReader reads lines from r, writing prompts to w. It is used
// when input doesn't come from a terminal.
func NewBufferedReader(r io.Reader, w io.Writer) *BufferedReader {
	return &BufferedReader{in: bufio.NewReader(r), out: w}
}

// BufferedReader is a LineReader without line editing.
type BufferedReader struct {
	in  *bufio.Reader
	out io.Writer
}

var _ LineReader = (*BufferedReader)(nil)

// ReadLine implements LineReader. A final line without a trailing newline is
// returned before io.EOF.
func (b *BufferedReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(b.out, prompt)

	line, err := b.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// Close implements LineReader.
func (b *BufferedReader) Close() error {
	return nil
}

// NewTerminalReader creates a line editor over a terminal. History is
// disabled.
func NewTerminalReader(stdin io.ReadCloser, stdout, stderr io.Writer) (*TerminalReader, error) {
	cfg := &readline.Config{
		Stdin:           readline.NewCancelableStdin(stdin),
		Stdout:          stdout,
		Stderr:          stderr,
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &TerminalReader{Readline: instance}, nil
}

// TerminalReader is a LineReader backed by readline.
type TerminalReader struct {
	Readline *readline.Instance
}

var _ LineReader = (*TerminalReader)(nil)

// ReadLine implements LineReader. Ctrl-C at the prompt yields
// ErrInterrupted, Ctrl-D on an empty line yields io.EOF.
func (t *TerminalReader) ReadLine(prompt string) (string, error) {
	t.Readline.SetPrompt(prompt)
	line, err := t.Readline.Readline()

	switch {
	case err == readline.ErrInterrupt:
		return "", ErrInterrupted
	case err != nil:
		return "", err
	default:
		return line, nil
	}
}

// Close implements LineReader.
func (t *TerminalReader) Close() error {
	return t.Readline.Close()
}
