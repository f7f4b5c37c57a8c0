// core/pdb/pdb.go

// Package pdb reads macromolecular structures from PDB-format text and
// exposes the model/chain/residue hierarchy needed for residue-pair
// analysis. Parsing is column-based per the PDB 3.3 ATOM record layout and
// deliberately lenient: records it cannot read are skipped, only an
// unreadable stream is an error.
package pdb

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Residue is one amino-acid position of a chain. CA is the alpha-carbon
// position, nil when the file carries no CA atom for the residue.
type Residue struct {
	Name   string // residue name as found in the file, e.g. "ALA"
	SeqNum int
	ICode  byte // insertion code, 0 when absent
	CA     *r3.Vec
}

// SeqID renders the sequence number the way reports and rule tables show
// it. The insertion code distinguishes residues during parsing but is not
// rendered.
func (r Residue) SeqID() string { return strconv.Itoa(r.SeqNum) }

// Chain holds residues in file order. That order is the canonical
// enumeration order for pair scanning.
type Chain struct {
	ID       string
	Residues []Residue
}

// Model is one coordinate set (NMR ensembles carry several).
type Model struct {
	Serial int
	Chains []Chain
}

// Structure is a parsed PDB file.
type Structure struct {
	Name   string
	Models []Model
}

type resKey struct {
	seq   int
	icode byte
}

// Read parses PDB-format text. MODEL/ENDMDL records group coordinate sets;
// files without them yield a single implicit model with serial 1. Only ATOM
// records contribute residues (HETATM is ignored); the CA position is taken
// from the first CA record of a residue, so altLoc duplicates are ignored.
func Read(r io.Reader, name string) (*Structure, error) {
	st := &Structure{Name: name}

	var (
		cur      *Model
		chains   map[string]int
		resIndex map[string]map[resKey]int
	)
	openModel := func(serial int) {
		st.Models = append(st.Models, Model{Serial: serial})
		cur = &st.Models[len(st.Models)-1]
		chains = make(map[string]int)
		resIndex = make(map[string]map[resKey]int)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if len(line) < 6 {
			continue
		}
		switch strings.TrimSpace(line[0:6]) {
		case "MODEL":
			serial := len(st.Models) + 1
			if len(line) >= 14 {
				if n, err := strconv.Atoi(strings.TrimSpace(line[10:14])); err == nil {
					serial = n
				}
			}
			openModel(serial)
		case "ENDMDL":
			cur = nil
		case "ATOM":
			if len(line) < 54 {
				continue
			}
			if cur == nil {
				openModel(len(st.Models) + 1)
			}
			seq, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
			if err != nil {
				continue
			}
			icode := line[26]
			if icode == ' ' {
				icode = 0
			}
			chainID := strings.TrimSpace(line[21:22])

			ci, ok := chains[chainID]
			if !ok {
				cur.Chains = append(cur.Chains, Chain{ID: chainID})
				ci = len(cur.Chains) - 1
				chains[chainID] = ci
				resIndex[chainID] = make(map[resKey]int)
			}
			ch := &cur.Chains[ci]

			k := resKey{seq: seq, icode: icode}
			ri, ok := resIndex[chainID][k]
			if !ok {
				ch.Residues = append(ch.Residues, Residue{
					Name:   strings.TrimSpace(line[17:20]),
					SeqNum: seq,
					ICode:  icode,
				})
				ri = len(ch.Residues) - 1
				resIndex[chainID][k] = ri
			}
			res := &ch.Residues[ri]

			if res.CA == nil && strings.TrimSpace(line[12:16]) == "CA" {
				x, errX := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
				y, errY := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
				z, errZ := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
				if errX == nil && errY == nil && errZ == nil {
					res.CA = &r3.Vec{X: x, Y: y, Z: z}
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pdb scan: %w", err)
	}
	return st, nil
}

// Open reads a structure from path. gzip input is detected by magic number
// or .gz suffix; "-" reads stdin. The structure name is the file base name
// without extensions.
func Open(path string) (*Structure, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc, structureName(path))
}

func structureName(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}
