// Package signals sets the process-wide disposition of the terminal's
// interrupt (Ctrl-C) and stop (Ctrl-Z) signals for the interpreter.
//
// The configuration is applied once from main, before the session is
// constructed, and is never touched again.
package signals

import (
	"errors"
	"os"
	"os/signal"
	"sync"
)

// ErrNoSignals is returned when the platform has no interactive signals to
// configure.
var ErrNoSignals = errors.New("no interactive signals on this platform")

var (
	once       sync.Once
	installErr error

	// sink is never read. Deliveries beyond its capacity are dropped by the
	// runtime, which leaves the signals caught but without effect.
	sink chan os.Signal
)

// IgnoreInteractive stops the interactive signals from terminating or
// suspending this process. Calls after the first do nothing and return the
// first call's result.
//
// Ctrl-C is caught rather than set to SIG_IGN. Caught dispositions are reset
// to the default on exec, so a foreground child can still be interrupted.
// Ctrl-Z is set to SIG_IGN, which children inherit: the session has no job
// control and a stopped child would never be waited out.
func IgnoreInteractive() error {
	once.Do(func() {
		installErr = install(caughtSignals, ignoredSignals)
	})
	return installErr
}

func install(caught, ignored []os.Signal) error {
	if len(caught) == 0 && len(ignored) == 0 {
		return ErrNoSignals
	}

	if len(ignored) > 0 {
		signal.Ignore(ignored...)
	}

	if len(caught) > 0 {
		sink = make(chan os.Signal, 1)
		signal.Notify(sink, caught...)
	}
	return nil
}
