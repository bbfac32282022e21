//go:build !unix

package signals

import "os"

// Only Ctrl-C has a portable equivalent.
var (
	caughtSignals  = []os.Signal{os.Interrupt}
	ignoredSignals []os.Signal
)
