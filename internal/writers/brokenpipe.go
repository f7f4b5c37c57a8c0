// internal/writers/brokenpipe.go
package writers

import (
	"errors"
	"io"
	"syscall"
)

// pipeGone lists the errors a vanished downstream reader surfaces as.
var pipeGone = []error{syscall.EPIPE, io.ErrClosedPipe}

// IsBrokenPipe reports whether err means the reader went away. Pair
// streams are routinely piped into `head` or `less`; the writer treats
// that as a normal end of output, not a failure.
func IsBrokenPipe(err error) bool {
	for _, sentinel := range pipeGone {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
