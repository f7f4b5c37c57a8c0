// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"prip/internal/clibase"
	"prip/internal/cliutil"
	"prip/internal/output"
)

// Options holds all prip flags and arguments.
type Options struct {
	clibase.Common

	// Structure input
	StructFile string
	Model      int
	Chain      string

	// Inline rule entry
	RuleName string
	Group1   string
	Group2   string
	Distance string

	// Output
	Header      bool // true unless --no-header
	MatchedOnly bool
	ExcelFile   string

	// History
	HistoryDB    string
	ShowHistory  bool
	HistoryLimit int

	NoMatchExitCode int
}

// NewFlagSet returns a configured FlagSet with the shared usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "protein residue interaction parser", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] structure.pdb\n", name)
		_, _ = fmt.Fprintf(out, "  %s -S structure.pdb -R rules.json -o json\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -S, --structure file        PDB structure file, '-' for STDIN (.gz accepted)")
		_, _ = fmt.Fprintf(out, "      --model int             Model serial to evaluate (0 = first) [%s]\n", def("model"))
		_, _ = fmt.Fprintln(out, "      --chain string          Chain identifier (default: first chain)")

		_, _ = fmt.Fprintln(out, "\nRule entry:")
		_, _ = fmt.Fprintln(out, "      --name string           Inline rule name (default \"Rule 1\")")
		_, _ = fmt.Fprintln(out, "      --group1 string         Inline rule group 1 (comma-separated residues)")
		_, _ = fmt.Fprintln(out, "      --group2 string         Inline rule group 2 (comma-separated residues)")
		_, _ = fmt.Fprintln(out, "      --distance string       Inline rule maximum CA-CA distance")

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | summary [%s]\n", def("output"))
		_, _ = fmt.Fprintf(out, "      --no-header             Suppress header line in text/TSV [%s]\n", def("no-header"))
		_, _ = fmt.Fprintf(out, "      --matched-only          Emit only pairs matching a rule (text/jsonl) [%s]\n", def("matched-only"))
		_, _ = fmt.Fprintln(out, "      --excel file            Also write an xlsx workbook to file")
		_, _ = fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no rule matches [%s]\n", def("no-match-exit-code"))

		_, _ = fmt.Fprintln(out, "\nHistory:")
		_, _ = fmt.Fprintln(out, "      --history file          SQLite run history (PRIP_HISTORY seeds the default)")
		_, _ = fmt.Fprintf(out, "      --show-history          List recorded runs and exit [%s]\n", def("show-history"))
		_, _ = fmt.Fprintf(out, "      --history-limit int     Max runs listed by --show-history [%s]\n", def("history-limit"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for prip.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "prip", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Find residue pairs whose CA atoms sit within a rule's distance.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  prip -R saved_rules.json 1abc.pdb")
		_, _ = fmt.Fprintln(w, "  prip --group1 ARG,LYS --group2 ASP,GLU --distance 4.5 1abc.pdb")
		_, _ = fmt.Fprintln(w, "  prip -R rules.json -o json --excel report.xlsx 1abc.pdb.gz")
	})
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(NewFlagSet("prip"), nil) }

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	rulesSet := clibase.Register(fs, &o.Common, clibase.EnvDefaults())

	fs.StringVar(&o.StructFile, "structure", "", "PDB structure file")
	fs.StringVar(&o.StructFile, "S", "", "alias of --structure")
	fs.IntVar(&o.Model, "model", 0, "model serial (0 = first) [0]")
	fs.StringVar(&o.Chain, "chain", "", "chain id (default: first)")

	fs.StringVar(&o.RuleName, "name", "", "inline rule name")
	fs.StringVar(&o.Group1, "group1", "", "inline rule group 1")
	fs.StringVar(&o.Group2, "group2", "", "inline rule group 2")
	fs.StringVar(&o.Distance, "distance", "", "inline rule max distance")

	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.BoolVar(&o.MatchedOnly, "matched-only", false, "emit only matched pairs [false]")
	fs.StringVar(&o.ExcelFile, "excel", "", "write xlsx workbook to file")

	fs.StringVar(&o.HistoryDB, "history", os.Getenv(clibase.EnvHistory), "history database")
	fs.BoolVar(&o.ShowHistory, "show-history", false, "list recorded runs and exit [false]")
	fs.IntVar(&o.HistoryLimit, "history-limit", 20, "max runs listed [20]")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no rule matches [0]")

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
	o.Header = !noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		switch {
		case len(exp) > 1:
			return o, errors.New("exactly one structure file may be given")
		case o.StructFile != "":
			return o, errors.New("structure given both as flag and positional")
		default:
			o.StructFile = exp[0]
		}
	}

	if o.ShowHistory {
		if o.HistoryDB == "" {
			return o, errors.New("--show-history requires --history (or PRIP_HISTORY)")
		}
		if o.Output != output.FormatText && o.Output != output.FormatJSON {
			return o, fmt.Errorf("--show-history supports text or json output, not %q", o.Output)
		}
		if o.HistoryLimit < 1 {
			return o, errors.New("--history-limit must be ≥ 1")
		}
		return o, nil
	}

	// Inline rule entry vs rule files.
	inline := o.RuleName != "" || o.Group1 != "" || o.Group2 != "" || o.Distance != ""
	if inline {
		if *rulesSet {
			return o, errors.New("--rules conflicts with inline --group1/--group2/--distance")
		}
		o.RuleFiles = nil // inline entry overrides the env-seeded default
		if o.Group1 == "" || o.Group2 == "" || o.Distance == "" {
			return o, errors.New("--group1, --group2 and --distance must be supplied together")
		}
	}

	if o.StructFile == "" {
		return o, errors.New("a structure file is required (positional or --structure)")
	}
	if o.Model < 0 {
		return o, errors.New("--model must be ≥ 0")
	}
	if err := clibase.Validate(&o.Common, output.Formats()); err != nil {
		return o, err
	}
	if o.MatchedOnly && o.Output != output.FormatText && o.Output != output.FormatJSONL {
		return o, errors.New("--matched-only applies to text or jsonl output")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return o, errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return o, nil
}
