// internal/rulecli/options.go
package rulecli

import (
	"flag"
	"fmt"
	"io"

	"prip-core/rule"
	"prip/internal/clibase"
	"prip/internal/cliutil"
	"prip/internal/output"
)

// Options holds all prip-rules flags and arguments.
type Options struct {
	clibase.Common

	WritePath string
}

// NewFlagSet returns a configured FlagSet with the shared usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "lint and normalize rule files", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] [rules.json ...]\n\n", name)
		_, _ = fmt.Fprintln(out, "Checks every rule and reports its problems; exit 1 flags an")
		_, _ = fmt.Fprintf(out, "unparsable rule. Without input it checks %s.\n", rule.DefaultFile)

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintf(out, "  -o, --output string         Output: text | json [%s]\n", def("output"))

		_, _ = fmt.Fprintln(out, "\nWrite:")
		_, _ = fmt.Fprintln(out, "  -w, --write file            Write the merged, normalized set to file")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for prip-rules.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "prip-rules", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Lint rule files and normalize them for sharing.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  prip-rules saved_rules.json")
		_, _ = fmt.Fprintln(w, "  prip-rules -R base.json -R extra.json -w merged.json")
		_, _ = fmt.Fprintln(w, "  prip-rules -o json team.json")
	})
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(NewFlagSet("prip-rules"), nil) }

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	rulesSet := clibase.Register(fs, &o.Common, clibase.EnvDefaults())
	fs.StringVar(&o.WritePath, "write", "", "write the normalized set to file")
	fs.StringVar(&o.WritePath, "w", "", "alias of --write")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		if *rulesSet {
			o.RuleFiles = append(o.RuleFiles, exp...)
		} else {
			// Positionals replace the env-seeded default, like explicit -R.
			o.RuleFiles = exp
		}
	}
	if len(o.RuleFiles) == 0 {
		o.RuleFiles = []string{rule.DefaultFile}
	}

	if err := clibase.Validate(&o.Common, []string{output.FormatText, output.FormatJSON}); err != nil {
		return o, err
	}
	return o, nil
}
