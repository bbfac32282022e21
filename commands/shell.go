package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/josephlewis42/minsh/core/logger"
	"github.com/josephlewis42/minsh/core/shell"
)

const (
	// ShellName is shown at the start of every prompt.
	ShellName = "minsh"
	// Farewell is printed once when the session ends.
	Farewell = "Goodbye"

	// exitNotFound is the informational code for a program that couldn't start.
	exitNotFound = 127
)

// Shell is an interactive session: it prompts, reads a line, and runs the
// builtin or external program it names until told to stop.
type Shell struct {
	reader   LineReader
	launcher Launcher
	stdout   io.Writer
	colors   *ColorPrinter
	events   *logger.SessionLogger
	builtins *Registry
}

// ShellConfig holds the dependencies of a Shell. Nil fields get defaults
// bound to the process's standard streams.
type ShellConfig struct {
	Reader   LineReader
	Launcher Launcher
	Stdout   io.Writer
	Colors   *ColorPrinter
	Events   *logger.SessionLogger
	Builtins *Registry
}

// NewShell creates a session. The builtin table is fixed from here on.
func NewShell(cfg ShellConfig) *Shell {
	s := &Shell{
		reader:   cfg.Reader,
		launcher: cfg.Launcher,
		stdout:   cfg.Stdout,
		colors:   cfg.Colors,
		events:   cfg.Events,
		builtins: cfg.Builtins,
	}

	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.reader == nil {
		s.reader = NewBufferedReader(os.Stdin, s.stdout)
	}
	if s.launcher == nil {
		s.launcher = &ExecLauncher{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	}
	if s.colors == nil {
		s.colors = &ColorPrinter{}
	}
	if s.events == nil {
		s.events = logger.Discard().NewSession()
	}
	if s.builtins == nil {
		s.builtins = DefaultRegistry()
	}

	return s
}

// Builtins returns the session's builtin table.
func (s *Shell) Builtins() *Registry {
	return s.builtins
}

type sessionState int

const (
	stateRunning sessionState = iota
	stateTerminated
)

// Run drives the session until exit is requested or input ends, then prints
// the farewell message.
func (s *Shell) Run() {
	s.events.Record(logger.EventSessionStart)

	state := stateRunning
	for state == stateRunning {
		state = s.step()
	}

	fmt.Fprintln(s.stdout, Farewell)
	s.events.Record(logger.EventSessionEnd)
}

func (s *Shell) step() sessionState {
	line, err := s.reader.ReadLine(s.prompt())
	switch {
	case errors.Is(err, ErrInterrupted):
		return stateRunning

	case errors.Is(err, io.EOF):
		// Input closed, quit. The prompt is still on the current line.
		fmt.Fprintln(s.stdout)
		return stateTerminated

	case err != nil:
		s.events.RecordError(logger.EventReadError, err)
		fmt.Fprintln(s.stdout)
		return stateTerminated
	}

	if s.Execute(line).IsTerminate() {
		return stateTerminated
	}
	return stateRunning
}

// Execute runs a single line of input: it is trimmed, shortcuts are
// expanded, and the first word is run as a builtin or external program.
// A blank line succeeds without doing anything.
func (s *Shell) Execute(line string) Outcome {
	expanded := shell.ExpandHome(strings.TrimSpace(line))
	tokens := shell.Tokenize(expanded)
	if len(tokens) == 0 {
		return Success(0)
	}

	name, args := tokens[0], tokens[1:]

	if builtin, ok := s.builtins.Lookup(name); ok {
		outcome := builtin.Handler.Main(s, args)
		s.events.Record(logger.EventBuiltin,
			slog.String("name", name),
			slog.Int("args", len(args)),
			slog.String("outcome", outcome.String()))
		return outcome
	}

	return s.launch(name, args)
}

func (s *Shell) launch(name string, args []string) Outcome {
	code, err := s.launcher.Launch(name, args)
	switch {
	case errors.Is(err, ErrCommandNotFound):
		s.events.RecordError(logger.EventCommandNotFound, err, slog.String("name", name))
		fmt.Fprintf(s.stdout, "%s: command not found\n", name)
		return Failure(exitNotFound)

	case err != nil:
		// The child started but waiting on it failed; nothing to tell the user.
		s.events.RecordError(logger.EventExec, err, slog.String("name", name))
		return Failure(1)
	}

	s.events.Record(logger.EventExec,
		slog.String("name", name),
		slog.Int("args", len(args)),
		slog.Int("exit_code", code))

	if code != 0 {
		return Failure(code)
	}
	return Success(0)
}

// prompt renders "minsh:<cwd>$ ".
func (s *Shell) prompt() string {
	pwd, err := os.Getwd()
	if err != nil {
		pwd = "?"
	}

	return fmt.Sprintf("%s:%s$ ",
		s.colors.Sprint(ColorBoldGreen, ShellName),
		s.colors.Sprint(ColorBoldBlue, pwd))
}
