// internal/rulecli/options_test.go
package rulecli

import (
	"errors"
	"flag"
	"testing"

	"prip/internal/clibase"
)

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(NewFlagSet("test"), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaultFile(t *testing.T) {
	t.Setenv(clibase.EnvRules, "")
	o := mustParse(t)
	if len(o.RuleFiles) != 1 || o.RuleFiles[0] != "saved_rules.json" {
		t.Fatalf("RuleFiles = %v", o.RuleFiles)
	}
	if o.Output != "text" || o.WritePath != "" {
		t.Fatalf("defaults = %+v", o)
	}
}

func TestPositionalFiles(t *testing.T) {
	o := mustParse(t, "a.json", "b.json")
	if len(o.RuleFiles) != 2 || o.RuleFiles[1] != "b.json" {
		t.Fatalf("RuleFiles = %v", o.RuleFiles)
	}
}

func TestPositionalsReplaceEnvDefault(t *testing.T) {
	t.Setenv(clibase.EnvRules, "team.json")
	o := mustParse(t, "mine.json")
	if len(o.RuleFiles) != 1 || o.RuleFiles[0] != "mine.json" {
		t.Fatalf("RuleFiles = %v", o.RuleFiles)
	}
}

func TestExplicitFlagsMergeWithPositionals(t *testing.T) {
	o := mustParse(t, "-R", "a.json", "b.json")
	if len(o.RuleFiles) != 2 || o.RuleFiles[0] != "a.json" || o.RuleFiles[1] != "b.json" {
		t.Fatalf("RuleFiles = %v", o.RuleFiles)
	}
}

func TestWritePath(t *testing.T) {
	o := mustParse(t, "-w", "out.json", "a.json")
	if o.WritePath != "out.json" {
		t.Fatalf("WritePath = %q", o.WritePath)
	}
}

func TestOutputRestricted(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet("test"), []string{"-o", "jsonl", "a.json"}); err == nil {
		t.Fatal("jsonl accepted by prip-rules")
	}
	o := mustParse(t, "-o", "json", "a.json")
	if o.Output != "json" {
		t.Fatalf("Output = %q", o.Output)
	}
}

func TestHelpSentinel(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("test"), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}
