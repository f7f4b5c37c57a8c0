// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"prip/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints
// tool-specific sections (usage line, input/output blocks) between the
// header and the shared blocks.
func UsageCommon(fs *flag.FlagSet, name, tagline string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s - %s\n", name, tagline)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		// Tool-specific additions
		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nRules:")
		fmt.Fprintln(out, "  -R, --rules file            Rule JSON file (repeatable; PRIP_RULES seeds the default)")
		fmt.Fprintf(out, "      --max-rules int         Rule capacity per set [%s]\n", def("max-rules"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
	}
}
