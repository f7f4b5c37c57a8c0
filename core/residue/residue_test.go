// core/residue/residue_test.go
package residue

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ALA", "ALA", true},
		{"ala", "ALA", true},
		{" gly ", "GLY", true},
		{"A", "ALA", true},
		{"w", "TRP", true},
		{"XYZ", "", false}, // not an amino acid
		{"B", "", false},
		{"ALAN", "", false},
		{"", "", false},
		{"  ", "", false},
	}
	for _, c := range cases {
		got, ok := Normalize(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Normalize(%q) = %q,%v want %q,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestTablesAgree(t *testing.T) {
	if len(ThreeToOne) != 20 {
		t.Fatalf("ThreeToOne has %d entries, want 20", len(ThreeToOne))
	}
	if len(OneToThree) != 20 {
		t.Fatalf("OneToThree has %d entries, want 20", len(OneToThree))
	}
	for three, one := range ThreeToOne {
		if OneToThree[one] != three {
			t.Errorf("OneToThree[%q] = %q, want %q", one, OneToThree[one], three)
		}
	}
}

func TestAcceptedBothForms(t *testing.T) {
	for three, one := range ThreeToOne {
		if !Accepted(three) {
			t.Errorf("Accepted(%q) = false", three)
		}
		if !Accepted(string(one)) {
			t.Errorf("Accepted(%q) = false", string(one))
		}
	}
}
