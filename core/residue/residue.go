// core/residue/residue.go
package residue

import "strings"

// ThreeToOne maps the twenty standard amino-acid residue names to their
// one-letter codes.
var ThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLN": 'Q', "GLU": 'E', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
}

// OneToThree is the inverse of ThreeToOne, built at init.
var OneToThree = make(map[byte]string, len(ThreeToOne))

func init() {
	for three, one := range ThreeToOne {
		OneToThree[one] = three
	}
}

// Normalize maps an amino-acid code in either accepted spelling ("A" or
// "ALA", any case, surrounding space ignored) to the canonical three-letter
// name. ok is false for anything outside the accepted set.
func Normalize(code string) (three string, ok bool) {
	c := strings.ToUpper(strings.TrimSpace(code))
	switch len(c) {
	case 1:
		three, ok = OneToThree[c[0]]
		return three, ok
	case 3:
		if _, known := ThreeToOne[c]; known {
			return c, true
		}
	}
	return "", false
}

// Accepted reports whether code spells a standard amino acid in either the
// three-letter or one-letter form.
func Accepted(code string) bool {
	_, ok := Normalize(code)
	return ok
}
