// core/rule/codec.go
package rule

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultFile is the conventional rules file name.
const DefaultFile = "saved_rules.json"

// record is the persisted rule shape: a JSON array of these. distance is a
// number for parsable rules and the raw entry text otherwise, so nothing
// the user typed is lost.
type record struct {
	Name     string          `json:"name"`
	Group1   []string        `json:"grp1"`
	Group2   []string        `json:"grp2"`
	Distance json.RawMessage `json:"distance"`
	Parsable string          `json:"parsable"`
}

// LoadInto reads a persisted rule array into s, appending after whatever
// the set already holds; positions continue the set's own numbering, so
// merged files keep distinct default names. Every record is re-validated;
// the stored parsable flag is advisory only. Loading stops with an error
// when the records exceed the set capacity.
func LoadInto(r io.Reader, s *Set) error {
	var recs []record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return fmt.Errorf("parse rules: %w", err)
	}
	for _, rec := range recs {
		pos := s.Len() + 1
		dist, err := distanceText(rec.Distance)
		if err != nil {
			return fmt.Errorf("rule %d: %w", pos, err)
		}
		v := Validate(pos, rec.Name, strings.Join(rec.Group1, ","), strings.Join(rec.Group2, ","), dist)
		if err := s.Add(v); err != nil {
			return fmt.Errorf("rule %d: %w", pos, err)
		}
	}
	return nil
}

// Load reads a persisted rule array into a fresh set of the given capacity.
func Load(r io.Reader, max int) (*Set, error) {
	s := NewSet(max)
	if err := LoadInto(r, s); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFileInto is LoadInto on a file, with the path prefixed onto any error.
func LoadFileInto(path string, s *Set) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()
	if err := LoadInto(fh, s); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadFile is Load on a file, with the path prefixed onto any error.
func LoadFile(path string, max int) (*Set, error) {
	s := NewSet(max)
	if err := LoadFileInto(path, s); err != nil {
		return nil, err
	}
	return s, nil
}

// distanceText recovers the text form of a stored distance: numbers keep
// their literal digits, strings are unquoted.
func distanceText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("bad distance %s", raw)
		}
		return s, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return "", fmt.Errorf("bad distance %s", raw)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save writes the set as the persisted JSON array. Saving then loading then
// saving again is byte-stable.
func Save(w io.Writer, s *Set) error {
	recs := make([]record, 0, s.Len())
	for _, r := range s.Rules() {
		rec := record{
			Name:     r.Name,
			Group1:   emptyNotNull(r.Group1),
			Group2:   emptyNotNull(r.Group2),
			Parsable: "no",
		}
		if r.Valid {
			rec.Parsable = "yes"
			rec.Distance = json.RawMessage(strconv.FormatFloat(r.MaxDistance, 'g', -1, 64))
		} else {
			q, err := json.Marshal(r.RawDistance)
			if err != nil {
				return err
			}
			rec.Distance = q
		}
		recs = append(recs, rec)
	}
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// SaveFile is Save to a freshly created file.
func SaveFile(path string, s *Set) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(fh, s); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func emptyNotNull(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
