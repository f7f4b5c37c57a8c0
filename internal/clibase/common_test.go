// internal/clibase/common_test.go
package clibase

import (
	"flag"
	"testing"
)

func TestEnvDefaults(t *testing.T) {
	t.Setenv(EnvRules, "team_rules.json")
	t.Setenv(EnvMaxRules, "5")
	d := EnvDefaults()
	if len(d.RuleFiles) != 1 || d.RuleFiles[0] != "team_rules.json" {
		t.Fatalf("RuleFiles = %v", d.RuleFiles)
	}
	if d.MaxRules != 5 || d.Output != "text" {
		t.Fatalf("defaults = %+v", d)
	}
}

func TestEnvDefaultsIgnoresBadMaxRules(t *testing.T) {
	t.Setenv(EnvMaxRules, "zero")
	if d := EnvDefaults(); d.MaxRules != 12 {
		t.Fatalf("MaxRules = %d", d.MaxRules)
	}
	t.Setenv(EnvMaxRules, "-3")
	if d := EnvDefaults(); d.MaxRules != 12 {
		t.Fatalf("MaxRules = %d", d.MaxRules)
	}
}

func TestExplicitRulesReplaceEnvDefault(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var c Common
	set := Register(fs, &c, Defaults{RuleFiles: []string{"from_env.json"}, MaxRules: 12, Output: "text"})
	if err := fs.Parse([]string{"-R", "a.json", "--rules", "b.json"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !*set {
		t.Fatal("explicit --rules not reported")
	}
	if len(c.RuleFiles) != 2 || c.RuleFiles[0] != "a.json" || c.RuleFiles[1] != "b.json" {
		t.Fatalf("RuleFiles = %v", c.RuleFiles)
	}
}

func TestEnvDefaultSurvivesWhenUnset(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var c Common
	set := Register(fs, &c, Defaults{RuleFiles: []string{"from_env.json"}, MaxRules: 12, Output: "text"})
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if *set {
		t.Fatal("rules reported explicit without flags")
	}
	if len(c.RuleFiles) != 1 || c.RuleFiles[0] != "from_env.json" {
		t.Fatalf("RuleFiles = %v", c.RuleFiles)
	}
}

func TestValidate(t *testing.T) {
	c := Common{MaxRules: 12, Output: "text"}
	if err := Validate(&c, []string{"text", "json"}); err != nil {
		t.Fatalf("valid rejected: %v", err)
	}
	c.Output = "yaml"
	if err := Validate(&c, []string{"text", "json"}); err == nil {
		t.Fatal("bad output accepted")
	}
	c = Common{MaxRules: 0, Output: "text"}
	if err := Validate(&c, []string{"text"}); err == nil {
		t.Fatal("zero capacity accepted")
	}
}
