// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// warnPrefix marks advisory stderr lines, such as rules dropped at load.
const warnPrefix = "WARN: "

// Warnf writes one advisory line to dst unless quiet output was requested.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintln(dst, warnPrefix+fmt.Sprintf(format, a...))
}
