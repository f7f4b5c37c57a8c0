// internal/output/json.go
package output

import (
	"io"

	"prip-core/engine"
	"prip-core/report"
	"prip-core/rule"
	"prip/internal/jsonutil"
	"prip/pkg/api"
)

// RunMeta identifies what a report was computed over.
type RunMeta struct {
	Structure string
	Model     int
	Chain     string
	Residues  int
}

// ToAPIPair converts one evaluated pair to the stable wire schema (v1).
// row is the 1-based row number in the table being rendered.
func ToAPIPair(row int, p engine.Pair) api.PairV1 {
	return api.PairV1{
		Index:      row,
		Residue1:   p.Residue1.Code,
		Residue1ID: p.Residue1.SeqID,
		Residue2:   p.Residue2.Code,
		Residue2ID: p.Residue2.SeqID,
		Distance:   p.Distance,
		Matches:    append([]string(nil), p.Matched...),
	}
}

// ToAPIRule converts a rule to the stable wire schema (v1). Groups marshal
// as [] rather than null so consumers can index them unconditionally.
func ToAPIRule(r rule.Rule) api.RuleV1 {
	v := api.RuleV1{
		Name:         r.Name,
		Group1:       append([]string{}, r.Group1...),
		Group2:       append([]string{}, r.Group2...),
		DistanceText: r.RawDistance,
		Parsable:     r.Valid,
		Problems:     append([]string(nil), r.Problems...),
	}
	if r.Valid {
		d := r.MaxDistance
		v.Distance = &d
	}
	return v
}

// BuildReportV1 flattens a finished report onto the stable wire schema (v1).
// rules should be the whole set the run was configured with; unparsable
// rules are carried through so consumers can see why a column is absent.
func BuildReportV1(meta RunMeta, rep *report.Report, rules []rule.Rule) api.ReportV1 {
	v := api.ReportV1{
		Structure: meta.Structure,
		Model:     meta.Model,
		Chain:     meta.Chain,
		Residues:  meta.Residues,
		Columns:   append([]string(nil), rep.Columns...),
		Pairs:     make([]api.PairV1, 0, len(rep.Rows)),
		Summary:   rep.Summary,
	}
	for _, r := range rules {
		v.Rules = append(v.Rules, ToAPIRule(r))
	}
	for _, row := range rep.Rows {
		v.Pairs = append(v.Pairs, rowToAPI(row, rep.RuleNames))
	}
	for _, tab := range rep.PerRule {
		out := api.RuleTableV1{Name: tab.Name, Count: tab.Count, Rows: make([]api.PairV1, 0, len(tab.Rows))}
		for _, row := range tab.Rows {
			out.Rows = append(out.Rows, rowToAPI(row, nil))
		}
		v.PerRule = append(v.PerRule, out)
	}
	return v
}

// rowToAPI keeps the comprehensive-table row number and recovers match
// names from the marker columns. Per-rule rows carry no markers.
func rowToAPI(row report.Row, ruleNames []string) api.PairV1 {
	v := api.PairV1{
		Index:      row.Index,
		Residue1:   row.Residue1,
		Residue1ID: row.ID1,
		Residue2:   row.Residue2,
		Residue2ID: row.ID2,
		Distance:   row.Distance,
	}
	for i, m := range row.Markers {
		if m != "" && i < len(ruleNames) {
			v.Matches = append(v.Matches, ruleNames[i])
		}
	}
	return v
}

// WriteReportJSON writes one pretty-indented v1 report object.
func WriteReportJSON(w io.Writer, v api.ReportV1) error {
	return jsonutil.EncodePretty(w, v)
}
