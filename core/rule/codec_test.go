// core/rule/codec_test.go
package rule

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleRules = `[
  {
    "name": "Salt bridge",
    "grp1": ["ARG", "LYS"],
    "grp2": ["ASP", "GLU"],
    "distance": 4.5,
    "parsable": "yes"
  },
  {
    "name": "Broken",
    "grp1": ["ALA"],
    "grp2": ["GLY"],
    "distance": "close",
    "parsable": "no"
  }
]`

func TestLoadNumberAndStringDistance(t *testing.T) {
	s, err := Load(strings.NewReader(sampleRules), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rules := s.Rules()
	if len(rules) != 2 {
		t.Fatalf("loaded %d rules, want 2", len(rules))
	}
	if !rules[0].Valid || rules[0].MaxDistance != 4.5 {
		t.Errorf("rule 1 = %+v", rules[0])
	}
	if rules[1].Valid || rules[1].RawDistance != "close" {
		t.Errorf("rule 2 = %+v", rules[1])
	}
}

func TestLoadReValidates(t *testing.T) {
	// The stored flag claims parsable but the group has an unknown code.
	text := `[{"name":"lie","grp1":["ZZZ"],"grp2":["GLY"],"distance":3,"parsable":"yes"}]`
	s, err := Load(strings.NewReader(text), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := s.Rules()[0]
	if r.Valid {
		t.Fatalf("stored parsable flag must not be trusted: %+v", r)
	}
	if len(r.Problems) == 0 || !strings.Contains(r.Problems[0], "ZZZ") {
		t.Errorf("problems = %v", r.Problems)
	}
}

func TestLoadCapacity(t *testing.T) {
	text := `[
		{"name":"a","grp1":["ALA"],"grp2":["GLY"],"distance":1,"parsable":"yes"},
		{"name":"b","grp1":["ALA"],"grp2":["GLY"],"distance":1,"parsable":"yes"}
	]`
	_, err := Load(strings.NewReader(text), 1)
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("err = %v, want ErrCapacity", err)
	}
	if !strings.Contains(err.Error(), "rule 2") {
		t.Errorf("error should name the offending slot: %v", err)
	}
}

func TestLoadBadDistanceValue(t *testing.T) {
	text := `[{"name":"a","grp1":["ALA"],"grp2":["GLY"],"distance":{"x":1},"parsable":"yes"}]`
	_, err := Load(strings.NewReader(text), 0)
	if err == nil || !strings.Contains(err.Error(), "rule 1") {
		t.Fatalf("err = %v, want rule 1 distance error", err)
	}
}

func TestLoadFileErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadFile(path, 0)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("err = %v, want path-prefixed parse error", err)
	}
}

func TestSaveLoadRoundTripIsByteStable(t *testing.T) {
	s, err := Load(strings.NewReader(sampleRules), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var first bytes.Buffer
	if err := Save(&first, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s2, err := Load(bytes.NewReader(first.Bytes()), 0)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	var second bytes.Buffer
	if err := Save(&second, s2); err != nil {
		t.Fatalf("resave: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("round trip not stable:\n--- first\n%s\n--- second\n%s", first.String(), second.String())
	}
}

func TestSaveEmptyGroupsAsArrays(t *testing.T) {
	s := NewSet(0)
	if err := s.Add(Validate(1, "", "", "GLY", "2")); err != nil {
		t.Fatalf("add: %v", err)
	}
	var buf bytes.Buffer
	if err := Save(&buf, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(buf.String(), "null") {
		t.Errorf("empty group must serialize as [], got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"parsable": "no"`) {
		t.Errorf("empty group rule must save as unparsable:\n%s", buf.String())
	}
}

func TestSaveFileRereads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	s, err := Load(strings.NewReader(sampleRules), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := SaveFile(path, s); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	s2, err := LoadFile(path, 0)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s2.Len() != s.Len() {
		t.Fatalf("reloaded %d rules, want %d", s2.Len(), s.Len())
	}
}
