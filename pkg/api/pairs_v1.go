// pkg/api/pairs_v1.go
package api

// PairV1 is the stable JSON/JSONL schema for one evaluated residue pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PairV1 struct {
	Index      int      `json:"index"` // 1-based row number within its table
	Residue1   string   `json:"residue1"`
	Residue1ID string   `json:"residue1_id"`
	Residue2   string   `json:"residue2"`
	Residue2ID string   `json:"residue2_id"`
	Distance   float64  `json:"distance"`
	Matches    []string `json:"matches,omitempty"` // names of rules the pair satisfies
}

// RuleV1 is the stable schema for a proximity rule as it was evaluated.
// Distance is set only for parsable rules; DistanceText preserves the raw
// entry either way.
type RuleV1 struct {
	Name         string   `json:"name"`
	Group1       []string `json:"grp1"`
	Group2       []string `json:"grp2"`
	Distance     *float64 `json:"distance,omitempty"`
	DistanceText string   `json:"distance_text"`
	Parsable     bool     `json:"parsable"`
	Problems     []string `json:"problems,omitempty"`
}

// RuleTableV1 is one per-rule match table.
type RuleTableV1 struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Rows  []PairV1 `json:"rows"`
}

// ReportV1 is the stable schema for a whole evaluation report.
type ReportV1 struct {
	Structure string        `json:"structure"`
	Model     int           `json:"model"`
	Chain     string        `json:"chain"`
	Residues  int           `json:"residues"`
	Columns   []string      `json:"columns"`
	Rules     []RuleV1      `json:"rules,omitempty"`
	Pairs     []PairV1      `json:"pairs"`
	PerRule   []RuleTableV1 `json:"per_rule,omitempty"`
	Summary   string        `json:"summary"`
}

// RunV1 is the stable schema for one recorded run in the history store.
type RunV1 struct {
	ID        string `json:"id"`
	Structure string `json:"structure"`
	Model     int    `json:"model"`
	Chain     string `json:"chain"`
	Residues  int    `json:"residues"`
	Pairs     int    `json:"pairs"`
	Matches   int    `json:"matches"`
	CreatedAt string `json:"created_at"`
}
