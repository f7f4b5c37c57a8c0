// core/report/report.go

// Package report aggregates evaluated residue pairs into the comprehensive
// table, the per-rule tables and the match summary. Build is pure: the same
// pairs and rules always produce the same report.
package report

import (
	"fmt"
	"strings"

	"prip-core/engine"
	"prip-core/rule"
)

// BaseColumns are the five leading columns of every table.
var BaseColumns = []string{"Residue 1", "Residue 1 id", "Residue 2", "Residue 2 id", "Distance"}

// Row is one table line. Index is the 1-based comprehensive row number;
// per-rule tables keep the index of the comprehensive row they came from.
// Markers is aligned with the report's RuleNames, "X" for a match and ""
// otherwise; it is nil on per-rule rows.
type Row struct {
	Index    int
	Residue1 string
	ID1      string
	Residue2 string
	ID2      string
	Distance float64
	Markers  []string
}

// RuleTable is the filtered view for one rule.
type RuleTable struct {
	Name  string
	Count int
	Rows  []Row
}

// Report is the full aggregation result.
type Report struct {
	Columns   []string // BaseColumns plus one column per rule
	RuleNames []string
	Rows      []Row
	PerRule   []RuleTable
	Summary   string
}

// Build aggregates pairs against the parsable rules. Unparsable rules are
// filtered here too, so they contribute no columns and no counts. Pair
// order is preserved; per-rule rows keep the comprehensive relative order.
func Build(pairs []engine.Pair, rules []rule.Rule) *Report {
	var names []string
	for _, r := range rules {
		if r.Valid {
			names = append(names, r.Name)
		}
	}

	rep := &Report{
		Columns:   append(append([]string{}, BaseColumns...), names...),
		RuleNames: names,
	}

	tables := make([]RuleTable, len(names))
	for k, name := range names {
		tables[k] = RuleTable{Name: name}
	}

	for i, p := range pairs {
		row := Row{
			Index:    i + 1,
			Residue1: p.Residue1.Code,
			ID1:      p.Residue1.SeqID,
			Residue2: p.Residue2.Code,
			ID2:      p.Residue2.SeqID,
			Distance: p.Distance,
			Markers:  make([]string, len(names)),
		}
		for k, name := range names {
			if p.Matches(name) {
				row.Markers[k] = "X"
				tables[k].Count++
				tables[k].Rows = append(tables[k].Rows, Row{
					Index:    row.Index,
					Residue1: row.Residue1,
					ID1:      row.ID1,
					Residue2: row.Residue2,
					ID2:      row.ID2,
					Distance: row.Distance,
				})
			}
		}
		rep.Rows = append(rep.Rows, row)
	}

	rep.PerRule = tables
	rep.Summary = buildSummary(tables)
	return rep
}

// MatchTotal is the sum of all per-rule counts.
func (r *Report) MatchTotal() int {
	n := 0
	for _, t := range r.PerRule {
		n += t.Count
	}
	return n
}

func buildSummary(tables []RuleTable) string {
	var b strings.Builder
	b.WriteString("Matches:\n")
	for _, t := range tables {
		fmt.Fprintf(&b, "%s: %d\n", t.Name, t.Count)
	}
	return b.String()
}
