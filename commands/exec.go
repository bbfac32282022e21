package commands

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ErrCommandNotFound is returned when an external program can't be started.
var ErrCommandNotFound = errors.New("command not found")

// Launcher runs external programs.
type Launcher interface {
	// Launch starts name with args and waits for it to exit, returning its
	// exit code. An error wrapping ErrCommandNotFound means the program
	// never started.
	Launch(name string, args []string) (int, error)
}

// ExecLauncher runs programs as child processes sharing the given streams.
type ExecLauncher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Launcher = (*ExecLauncher)(nil)

// Launch implements Launcher. There is no timeout: a child that never exits
// blocks the caller indefinitely.
func (l *ExecLauncher) Launch(name string, args []string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("%w: %w", ErrCommandNotFound, err)
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return -1, err
	}
}
