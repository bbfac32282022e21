//go:build unix

package signals

import (
	"os"

	"golang.org/x/sys/unix"
)

var (
	caughtSignals  = []os.Signal{unix.SIGINT}
	ignoredSignals = []os.Signal{unix.SIGTSTP}
)
