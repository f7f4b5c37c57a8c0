// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested
// examples. Apps should catch this and exit 0 after printing them.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples frames a tool's quickstart: a title line, the tool's own
// example body, and a pointer to full help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil || body == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s - quickstart\n\n", name)
	body(out)
	_, _ = io.WriteString(out, "\nTip: run with --help for all flags.\n")
}
