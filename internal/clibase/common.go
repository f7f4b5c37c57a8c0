// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"prip-core/rule"
)

// Environment variables honored by the prip tools. The cmd wrappers load
// a .env file first, so these can live there as well.
const (
	EnvRules    = "PRIP_RULES"
	EnvMaxRules = "PRIP_MAX_RULES"
	EnvHistory  = "PRIP_HISTORY"
)

// Common holds CLI fields shared by prip and prip-rules.
type Common struct {
	RuleFiles []string
	MaxRules  int
	Output    string
	Quiet     bool
	Version   bool
}

// Defaults seeds Register's flag defaults.
type Defaults struct {
	RuleFiles []string
	MaxRules  int
	Output    string
}

// EnvDefaults derives flag defaults from the environment: PRIP_RULES
// seeds the rule file list, PRIP_MAX_RULES the set capacity.
func EnvDefaults() Defaults {
	d := Defaults{MaxRules: rule.DefaultMaxRules, Output: "text"}
	if v := os.Getenv(EnvRules); v != "" {
		d.RuleFiles = []string{v}
	}
	if v := os.Getenv(EnvMaxRules); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			d.MaxRules = n
		}
	}
	return d
}

// sliceValue appends each value to a *[]string (for --rules/-R). The first
// explicit flag replaces any env-seeded default instead of appending to it.
type sliceValue struct {
	dst *[]string
	set bool
}

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	if !s.set {
		*s.dst = nil
		s.set = true
	}
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs. The returned bool reports whether
// --rules was passed explicitly, so callers can tell an env-seeded default
// from a user choice.
func Register(fs *flag.FlagSet, c *Common, d Defaults) *bool {
	c.RuleFiles = append([]string(nil), d.RuleFiles...)
	c.MaxRules = d.MaxRules
	c.Output = d.Output

	rules := &sliceValue{dst: &c.RuleFiles}
	fs.Var(rules, "rules", "rule JSON file (repeatable)")
	fs.Var(rules, "R", "alias of --rules")
	fs.IntVar(&c.MaxRules, "max-rules", d.MaxRules, "rule capacity per set")

	fs.StringVar(&c.Output, "output", d.Output, "output format")
	fs.StringVar(&c.Output, "o", d.Output, "alias of --output")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &rules.set
}

// Validate applies shared CLI invariants used by both tools. formats lists
// the output formats the calling tool accepts.
func Validate(c *Common, formats []string) error {
	if c.MaxRules < 1 {
		return errors.New("--max-rules must be ≥ 1")
	}
	for _, f := range formats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", c.Output)
}
