// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"prip-core/engine"
	"prip-core/pdb"
	"prip-core/report"
	"prip-core/rule"
	"prip-core/session"
	"prip/internal/appcore"
	"prip/internal/cli"
	"prip/internal/clibase"
	"prip/internal/cmdutil"
	"prip/internal/common"
	"prip/internal/export"
	"prip/internal/jsonutil"
	"prip/internal/output"
	"prip/internal/runstore"
	"prip/internal/version"
	"prip/internal/visitors"
	"prip/internal/writers"
	"prip/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("prip")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw)
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "prip version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.ShowHistory {
		return showHistory(parent, outw, stderr, opts)
	}

	// Rule configuration: one inline rule, or any number of rule files
	// merged into a single capacity-bounded set. Unparsable rules are
	// warned about and excluded, never fatal.
	set := rule.NewSet(opts.MaxRules)
	if opts.Distance != "" {
		if err := set.Add(rule.Validate(1, opts.RuleName, opts.Group1, opts.Group2, opts.Distance)); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	} else {
		for _, f := range opts.RuleFiles {
			if err := rule.LoadFileInto(f, set); err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return 2
			}
		}
	}
	for i, r := range set.Rules() {
		if !r.Valid {
			cmdutil.Warnf(stderr, opts.Quiet, "%s", common.Describe(i+1, r))
		}
	}
	if set.Len() == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no rules configured; reporting pair distances only")
	}

	st, err := pdb.Open(opts.StructFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// Resolve the selection before any output starts: a bad --model or
	// --chain aborts wholesale with usage-style exit code 2.
	m, ch, err := st.Select(opts.Model, opts.Chain)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	meta := output.RunMeta{Structure: st.Name, Model: m.Serial, Chain: ch.ID, Residues: len(ch.Residues)}

	ses := session.New(opts.MaxRules)
	ses.SetRules(set)
	ses.LoadStructure(st)
	ses.SelectModel(opts.Model)
	ses.SelectChain(opts.Chain)

	var names []string
	for _, r := range set.Valid() {
		names = append(names, r.Name)
	}
	wf := appcore.NewPairWriterFactory(writers.Config{
		Format:    opts.Output,
		Header:    opts.Header,
		Rules:     set.Rules(),
		RuleNames: names,
		Meta:      meta,
	})

	var visit appcore.VisitorFunc[engine.Pair] = visitors.PassThrough{}.Visit
	if opts.MatchedOnly {
		visit = visitors.MatchedOnly{}.Visit
	}

	coreOpts := appcore.Options{
		Quiet:           opts.Quiet,
		NoMatchExitCode: opts.NoMatchExitCode,
		Post: func(rep *report.Report) error {
			if opts.ExcelFile != "" {
				if err := export.WriteFile(opts.ExcelFile, rep); err != nil {
					return err
				}
			}
			if opts.HistoryDB != "" {
				if err := recordRun(parent, opts.HistoryDB, meta, rep); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return appcore.Run[engine.Pair](parent, stdout, stderr, coreOpts, ses, visit, wf)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// showHistory lists recorded runs from the history store and exits.
func showHistory(ctx context.Context, outw *bufio.Writer, stderr io.Writer, opts cli.Options) int {
	store, err := runstore.Open(opts.HistoryDB)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(ctx, opts.HistoryLimit)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	list := make([]api.RunV1, 0, len(runs))
	for _, r := range runs {
		list = append(list, r.V1())
	}

	var werr error
	switch opts.Output {
	case output.FormatJSON:
		werr = jsonutil.EncodePretty(outw, list)
	default:
		werr = output.WriteRunsText(outw, list, opts.Header)
	}
	if werr == nil {
		werr = outw.Flush()
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	return 0
}

// recordRun appends one finished evaluation to the history store.
func recordRun(ctx context.Context, path string, meta output.RunMeta, rep *report.Report) error {
	store, err := runstore.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	counts := make([]runstore.RuleCount, 0, len(rep.PerRule))
	for i, tab := range rep.PerRule {
		counts = append(counts, runstore.RuleCount{Position: i + 1, Name: tab.Name, Matches: tab.Count})
	}
	_, err = store.RecordRun(ctx, runstore.Run{
		Structure: meta.Structure,
		Model:     meta.Model,
		Chain:     meta.Chain,
		Residues:  meta.Residues,
		Pairs:     len(rep.Rows),
		Matches:   rep.MatchTotal(),
	}, counts)
	return err
}
