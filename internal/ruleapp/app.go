// internal/ruleapp/app.go

// Package ruleapp implements prip-rules, the rule-file linter: it loads
// rule files, reports every validation problem, and can write the merged,
// normalized set back out for sharing.
package ruleapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"prip-core/rule"
	"prip/internal/clibase"
	"prip/internal/common"
	"prip/internal/jsonutil"
	"prip/internal/output"
	"prip/internal/rulecli"
	"prip/internal/version"
	"prip/internal/writers"
	"prip/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	_ = parent // linting is instantaneous; nothing to cancel

	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := rulecli.NewFlagSet("prip-rules")
	fs.SetOutput(io.Discard)

	opts, err := rulecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			rulecli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "prip-rules version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	set := rule.NewSet(opts.MaxRules)
	for _, f := range opts.RuleFiles {
		if err := rule.LoadFileInto(f, set); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	var werr error
	switch opts.Output {
	case output.FormatJSON:
		list := make([]api.RuleV1, 0, set.Len())
		for _, r := range set.Rules() {
			list = append(list, output.ToAPIRule(r))
		}
		werr = jsonutil.EncodePretty(outw, list)
	default:
		for i, r := range set.Rules() {
			if _, werr = fmt.Fprintln(outw, common.Describe(i+1, r)); werr != nil {
				break
			}
		}
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

	if opts.WritePath != "" {
		if err := rule.SaveFile(opts.WritePath, set); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if len(set.Invalid()) > 0 {
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
